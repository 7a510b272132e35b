package fincast

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// GoalImportSpec maps a third-party JSON export onto goals. Items selects
// the list of records; the other expressions are evaluated within each
// record. Monthly and By are optional.
type GoalImportSpec struct {
	Items   string // jsonpath to the list of goal records
	Name    string
	Target  string
	Current string
	Monthly string
	By      string
}

// ImportGoals extracts goals from an arbitrary JSON export using the
// jsonpath expressions of the spec. Banking apps and spreadsheet exports
// rarely agree on a schema, so the mapping is the caller's.
func ImportGoals(r io.Reader, spec GoalImportSpec) ([]Goal, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("import error: not a correct json: %w", err)
	}

	jitems, err := jsonpath.Get(spec.Items, jobj)
	if err != nil {
		return nil, fmt.Errorf("import error: items path %q: %w", spec.Items, err)
	}
	items, ok := jitems.([]any)
	if !ok {
		return nil, fmt.Errorf("import error: items path %q must select a list, got %T", spec.Items, jitems)
	}

	goals := make([]Goal, 0, len(items))
	for i, item := range items {
		var g Goal
		if g.Name, err = importString(item, spec.Name); err != nil {
			return nil, fmt.Errorf("import error in record %d: %w", i, err)
		}
		if g.Target, err = importAmount(item, spec.Target); err != nil {
			return nil, fmt.Errorf("import error in record %d (%s): %w", i, g.Name, err)
		}
		if g.Current, err = importAmount(item, spec.Current); err != nil {
			return nil, fmt.Errorf("import error in record %d (%s): %w", i, g.Name, err)
		}
		if spec.Monthly != "" {
			if g.Monthly, err = importAmount(item, spec.Monthly); err != nil {
				return nil, fmt.Errorf("import error in record %d (%s): %w", i, g.Name, err)
			}
		}
		if spec.By != "" {
			s, err := importString(item, spec.By)
			if err != nil {
				return nil, fmt.Errorf("import error in record %d (%s): %w", i, g.Name, err)
			}
			if g.TargetDate, err = ParseDate(s); err != nil {
				return nil, fmt.Errorf("import error in record %d (%s): %w", i, g.Name, err)
			}
		}
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("import error in record %d: %w", i, err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// importValue evaluates a jsonpath within one record. jsonpath is never
// clear about whether it returns a list of one answer or a single answer,
// so a single-element list is unwrapped.
func importValue(item any, path string) (any, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func importString(item any, path string) (string, error) {
	jval, err := importValue(item, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
	return s, nil
}

func importAmount(item any, path string) (Amount, error) {
	jval, err := importValue(item, path)
	if err != nil {
		return Amount{}, err
	}
	val, ok := jval.(float64)
	if !ok {
		// some exports carry numbers as strings, with locale commas
		sval, ok := jval.(string)
		if !ok {
			return Amount{}, fmt.Errorf("path %q: neither a number nor a string: %v", path, jval)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return Amount{}, fmt.Errorf("path %q: invalid number %q: %w", path, sval, err)
		}
	}
	return A(val), nil
}
