// Package renderer turns planner results into markdown reports.
//
// Each report is a text/template over an embedded .md file, so the layout
// can be reviewed and edited without touching Go code. Views carry the
// inputs next to the results: a report that does not restate its
// assumptions is not a report.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fincast"
)

//go:embed templates/*.md
var templates embed.FS

// RenderProjection renders a single projection report.
func RenderProjection(v *ProjectionView) string {
	return renderTemplate("projection", "templates/projection.md", nil, v)
}

// RenderMultiPeriod renders the growth-over-time report with its yearly
// breakdown.
func RenderMultiPeriod(v *MultiPeriodView) string {
	partials := map[string]string{
		"multiperiod_breakdown": "templates/multiperiod_breakdown.md",
		"multiperiod_failed":    "templates/multiperiod_failed.md",
	}
	return renderTemplate("multiperiod", "templates/multiperiod.md", partials, v)
}

// RenderScenarios renders the scenario comparison report.
func RenderScenarios(v *ScenarioView) string {
	return renderTemplate("scenarios", "templates/scenarios.md", nil, v)
}

// RenderFI renders the financial independence timeline report.
func RenderFI(v *FIView) string {
	return renderTemplate("fi", "templates/fi.md", nil, v)
}

// RenderContribution renders the required contribution report.
func RenderContribution(v *ContributionView) string {
	return renderTemplate("contribution", "templates/contribution.md", nil, v)
}

// RenderYears renders the years-to-target report.
func RenderYears(v *YearsView) string {
	return renderTemplate("years", "templates/years.md", nil, v)
}

// RenderSensitivity renders the contribution sensitivity table.
func RenderSensitivity(v *SensitivityView) string {
	return renderTemplate("sensitivity", "templates/sensitivity.md", nil, v)
}

// RenderComparison renders the strategy comparison report.
func RenderComparison(v *ComparisonView) string {
	return renderTemplate("compare", "templates/compare.md", nil, v)
}

// RenderBreakeven renders the inflation breakeven report.
func RenderBreakeven(v *BreakevenView) string {
	return renderTemplate("breakeven", "templates/breakeven.md", nil, v)
}

// RenderTiming renders the lump sum versus DCA report.
func RenderTiming(v *TimingView) string {
	return renderTemplate("timing", "templates/timing.md", nil, v)
}

// RenderGoals renders the progress report for a list of goals.
func RenderGoals(v *GoalsView) string {
	partials := map[string]string{
		"goal_detail": "templates/goal_detail.md",
	}
	return renderTemplate("goals", "templates/goals.md", partials, v)
}

// funcs are the formatting helpers available to every template.
var funcs = template.FuncMap{
	"money":  Format,
	"signed": SignedFormat,
	"pct": func(p fincast.Percent) string {
		return p.String()
	},
	"rate": func(r fincast.Rate) string {
		return r.Percent().String()
	},
	"check": func(ok bool) string {
		if ok {
			return "yes"
		}
		return "no"
	},
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
