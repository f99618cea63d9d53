package renderer

import "github.com/etnz/finpredictor"

// Portfolio is the data of a portfolio report.
type Portfolio struct {
	finpredictor.Portfolio
	Total      finpredictor.Performance
	Allocation []finpredictor.Slice
}

// PortfolioMarkdown renders the assets of a portfolio, its totals and its allocation.
func PortfolioMarkdown(p finpredictor.Portfolio) string {
	partials := map[string]string{
		"portfolio_assets":     "portfolio_assets.md",
		"portfolio_allocation": "portfolio_allocation.md",
	}
	if len(p.Assets) == 0 {
		partials["portfolio_assets"] = "portfolio_empty.md"
		partials["portfolio_allocation"] = ""
	}
	data := Portfolio{Portfolio: p, Total: p.Performance(), Allocation: p.Allocation()}
	return renderTemplate("portfolio", "portfolio.md", partials, data)
}

// GoalsMarkdown renders a list of goals.
func GoalsMarkdown(goals []finpredictor.Goal) string {
	return renderTemplate("goals", "goals.md", nil, goals)
}

// InsightsMarkdown renders AI recommendations.
func InsightsMarkdown(p finpredictor.Prediction) string {
	return renderTemplate("insights", "insights.md", nil, p)
}
