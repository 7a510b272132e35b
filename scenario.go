package fincast

import (
	"github.com/shopspring/decimal"
)

// Scenario is a named growth assumption.
type Scenario struct {
	Name string `json:"name"`
	Rate Rate   `json:"rate"`
}

// The standard scenario triple and its fixed weights. The weights apply to
// the weighted average of the standard analysis only.
var (
	Pessimistic = Scenario{Name: "pessimistic", Rate: R(0.05)}
	Realistic   = Scenario{Name: "realistic", Rate: R(0.07)}
	Optimistic  = Scenario{Name: "optimistic", Rate: R(0.10)}

	standardScenarios = []Scenario{Pessimistic, Realistic, Optimistic}

	standardWeights = map[string]decimal.Decimal{
		Pessimistic.Name: decimal.NewFromFloat(0.20),
		Realistic.Name:   decimal.NewFromFloat(0.60),
		Optimistic.Name:  decimal.NewFromFloat(0.20),
	}
)

// StandardScenarios returns a copy of the pessimistic/realistic/optimistic
// triple.
func StandardScenarios() []Scenario {
	return append([]Scenario(nil), standardScenarios...)
}

// ScenarioResult is one successfully projected scenario.
type ScenarioResult struct {
	Scenario
	Value Amount `json:"value"`
}

// ScenarioAnalysis projects the same inputs under several named rates.
type ScenarioAnalysis struct {
	Current      Amount           `json:"current"`
	Contribution Amount           `json:"monthly_contribution"`
	Years        int              `json:"years"`
	Results      []ScenarioResult `json:"scenarios"`
	// Failed lists scenarios whose projection failed; they are dropped
	// from Results and from the weighted average, never zero-filled.
	Failed []string `json:"failed,omitempty"`
	// WeightedAverage is the fixed-weight combination of the standard
	// triple. Zero for custom scenario sets, which carry no weights.
	WeightedAverage Amount `json:"weighted_average"`
}

// Incomplete reports whether some scenarios were dropped.
func (a *ScenarioAnalysis) Incomplete() bool { return len(a.Failed) > 0 }

// Scenarios projects under the standard pessimistic/realistic/optimistic
// rates and combines them with the 0.20/0.60/0.20 weights. A scenario that
// fails to compute is dropped from the weighted sum, not zero-filled.
func (p *Planner) Scenarios(current, contribution Amount, years int) (*ScenarioAnalysis, error) {
	a, err := p.CustomScenarios(current, contribution, years, standardScenarios)
	if err != nil {
		return nil, err
	}
	sum := decimal.Zero
	for _, r := range a.Results {
		sum = sum.Add(r.Value.Decimal().Mul(standardWeights[r.Name]))
	}
	a.WeightedAverage = Amount{value: sum}
	return a, nil
}

// CustomScenarios projects under caller-provided named rates. Individual
// scenario failures are recorded and skipped; the batch never aborts.
func (p *Planner) CustomScenarios(current, contribution Amount, years int, scenarios []Scenario) (*ScenarioAnalysis, error) {
	a := &ScenarioAnalysis{
		Current:      current,
		Contribution: contribution,
		Years:        years,
	}
	for _, s := range scenarios {
		proj, err := p.ProjectGrowth(current, contribution, years, s.Rate)
		if err != nil {
			a.Failed = append(a.Failed, s.Name)
			continue
		}
		a.Results = append(a.Results, ScenarioResult{Scenario: s, Value: proj.Value})
	}
	return a, nil
}
