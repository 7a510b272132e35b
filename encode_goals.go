package fincast

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file persists goals as JSONL, one goal per line, human-readable and
// git-friendly so a goal file can live in a private repo next to the rest of
// a plan.

// DecodeGoals reads a JSONL stream of goals. Empty lines are skipped and
// duplicate names are rejected.
func DecodeGoals(r io.Reader) ([]Goal, error) {
	var goals []Goal
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var g Goal
		if err := json.Unmarshal(line, &g); err != nil {
			return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}
		if _, dup := seen[g.Name]; dup {
			return nil, fmt.Errorf("format error: goal %q is already defined", g.Name)
		}
		seen[g.Name] = struct{}{}
		goals = append(goals, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return goals, nil
}

// EncodeGoal marshals a single goal to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeGoal(w io.Writer, g Goal) error {
	jsonData, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal goal %q: %w", g.Name, err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write goal %q: %w", g.Name, err)
	}
	return nil
}

// EncodeGoals persists goals to an io.Writer in JSONL format, preserving
// their order.
func EncodeGoals(w io.Writer, goals []Goal) error {
	for _, g := range goals {
		if err := EncodeGoal(w, g); err != nil {
			return err
		}
	}
	return nil
}
