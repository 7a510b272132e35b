package agent

import (
	"context"
	"fmt"

	"github.com/etnz/fincast"
	"github.com/etnz/fincast/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand where his savings plan is going: how his
			portfolio could grow, what it takes to reach a target, and when he could stop working.

			Devise a plan of questions to ask to each experts and come up with the best response
			to the user's request. Never invent figures: every number in your answer must come
			from an expert.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher is the expert grounding rate assumptions in real market data.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of historical asset returns, inflation figures and
		interest rate levels across markets.
		Ask the Researcher whenever you need a realistic rate assumption or recent figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in market research. You can search and find about anything related
			to historical returns, inflation, savings rates and market indices. You leverage
			Google Search to ground your assertions in a solid truth.
			When asked for a rate assumption, give a single number with its source and period.
				`}}},
		},
	}
}

// NewActuary is the expert running the projection engine.
func NewActuary() *Expert {

	lib := []Function{Project, Contribution, Years, Independence}

	return &Expert{
		Name: "Actuary",
		Description: `This is the Actuary. He runs the projection engine: compound growth
		projections, required contributions, years to a target and financial independence
		timelines. Ask the Actuary whenever the user needs a figure computed.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an actuary in charge of the user's savings projections.
				You know how to use the Tools to compute growth projections, required
				contributions, years to a target and financial independence timelines.
				Rates are fractions: 7% is 0.07. Never compute a figure yourself, always
				use a tool and report its output.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// failure wraps an error into a function response.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// success wraps a markdown report into a function response.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func argNumber(args map[string]any, key string, def float64) (float64, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q is not a number but %T", key, v)
	}
	return f, nil
}

var numberSchema = func(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: desc}
}

var reportSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown-formatted report with the computed figures.",
}

// Project projects the portfolio value at a horizon.
var Project = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Project",
		Description: `Project the portfolio value at a horizon, compounding at an annual
		growth rate with optional monthly contributions.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"current": numberSchema("Current portfolio value."),
				"monthly": numberSchema("Monthly contribution. Defaults to 0."),
				"years":   numberSchema("Projection horizon in whole years."),
				"rate":    numberSchema("Annual growth rate as a fraction, e.g. 0.07 for 7%."),
			},
			Required: []string{"current", "years", "rate"},
		},
		Response: reportSchema,
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		current, err := argNumber(args, "current", 0)
		if err != nil {
			return failure(id, "Project", err)
		}
		monthly, err := argNumber(args, "monthly", 0)
		if err != nil {
			return failure(id, "Project", err)
		}
		years, err := argNumber(args, "years", 0)
		if err != nil {
			return failure(id, "Project", err)
		}
		rate, err := argNumber(args, "rate", 0.07)
		if err != nil {
			return failure(id, "Project", err)
		}

		var p fincast.Planner
		proj, err := p.ProjectGrowth(fincast.A(current), fincast.A(monthly), int(years), fincast.R(rate))
		if err != nil {
			return failure(id, "Project", err)
		}
		return success(id, "Project", renderer.RenderProjection(renderer.NewProjectionView("USD", proj)))
	},
}

// Contribution searches the monthly contribution required to reach a target.
var Contribution = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Contribution",
		Description: `Find the monthly contribution required to grow the current value to a
		target within a horizon of 1 to 50 years.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"current": numberSchema("Current portfolio value."),
				"target":  numberSchema("Target value to reach."),
				"years":   numberSchema("Horizon in whole years, 1 to 50."),
				"rate":    numberSchema("Annual growth rate as a fraction."),
			},
			Required: []string{"current", "target", "years", "rate"},
		},
		Response: reportSchema,
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		current, err := argNumber(args, "current", 0)
		if err != nil {
			return failure(id, "Contribution", err)
		}
		target, err := argNumber(args, "target", 0)
		if err != nil {
			return failure(id, "Contribution", err)
		}
		years, err := argNumber(args, "years", 0)
		if err != nil {
			return failure(id, "Contribution", err)
		}
		rate, err := argNumber(args, "rate", 0.07)
		if err != nil {
			return failure(id, "Contribution", err)
		}

		var p fincast.Planner
		monthly, err := p.RequiredContribution(fincast.A(current), fincast.A(target), int(years), fincast.R(rate))
		if err != nil {
			return failure(id, "Contribution", err)
		}
		v := renderer.NewContributionView("USD", fincast.A(current), fincast.A(target), int(years), fincast.R(rate), monthly)
		return success(id, "Contribution", renderer.RenderContribution(v))
	},
}

// Years searches the years needed to reach a target.
var Years = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Years",
		Description: `Find the smallest whole number of years at which the savings plan
		reaches a target. The search is bounded at 100 years.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"current": numberSchema("Current portfolio value."),
				"monthly": numberSchema("Monthly contribution. Defaults to 0."),
				"target":  numberSchema("Target value to reach."),
				"rate":    numberSchema("Annual growth rate as a fraction."),
			},
			Required: []string{"current", "target", "rate"},
		},
		Response: reportSchema,
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		current, err := argNumber(args, "current", 0)
		if err != nil {
			return failure(id, "Years", err)
		}
		monthly, err := argNumber(args, "monthly", 0)
		if err != nil {
			return failure(id, "Years", err)
		}
		target, err := argNumber(args, "target", 0)
		if err != nil {
			return failure(id, "Years", err)
		}
		rate, err := argNumber(args, "rate", 0.07)
		if err != nil {
			return failure(id, "Years", err)
		}

		var p fincast.Planner
		years, err := p.RequiredYears(fincast.A(current), fincast.A(monthly), fincast.A(target), fincast.R(rate))
		if err != nil {
			return failure(id, "Years", err)
		}
		return success(id, "Years", fmt.Sprintf("The target %v is reached in %d years.", target, years))
	},
}

// Independence computes the financial independence timeline.
var Independence = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Independence",
		Description: `Estimate the years until the portfolio covers 25x annual expenses,
		per the 4% safe-withdrawal rule.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"current":  numberSchema("Current portfolio value."),
				"monthly":  numberSchema("Monthly contribution. Defaults to 0."),
				"expenses": numberSchema("Annual expenses to cover."),
				"rate":     numberSchema("Annual growth rate as a fraction."),
			},
			Required: []string{"current", "expenses", "rate"},
		},
		Response: reportSchema,
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		current, err := argNumber(args, "current", 0)
		if err != nil {
			return failure(id, "Independence", err)
		}
		monthly, err := argNumber(args, "monthly", 0)
		if err != nil {
			return failure(id, "Independence", err)
		}
		expenses, err := argNumber(args, "expenses", 0)
		if err != nil {
			return failure(id, "Independence", err)
		}
		rate, err := argNumber(args, "rate", 0.07)
		if err != nil {
			return failure(id, "Independence", err)
		}

		var p fincast.Planner
		t, err := p.FITimeline(fincast.A(current), fincast.A(monthly), fincast.A(expenses), fincast.R(rate))
		if err != nil {
			return failure(id, "Independence", err)
		}
		return success(id, "Independence", renderer.RenderFI(renderer.NewFIView("USD", t)))
	},
}
