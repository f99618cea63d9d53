package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/date"
	"github.com/etnz/finpredictor/renderer"
	"github.com/etnz/finpredictor/store"
)

// DemoNote marks predictions made without a model.
const DemoNote = "Demo insights; configure a Gemini API key for personalized predictions."

// DemoInsights are returned when no model is available.
var DemoInsights = []finpredictor.Insight{
	{Title: "Market Outlook", Detail: "Volatility expected near-term; maintain diversified SIPs."},
	{Title: "SIP Adjustment", Detail: "Increase equity SIP by 10% to target goals sooner."},
	{Title: "Risk Alignment", Detail: "Current allocation is moderate; consider 60/30/10 equity/debt/cash."},
	{Title: "Optimization", Detail: "Rebalance from underperforming small-cap to large-cap index."},
}

// Generator produces insights from a prompt.
type Generator interface {
	GenerateInsights(ctx context.Context, prompt string) ([]finpredictor.Insight, error)
}

// Advisor answers prediction requests.
type Advisor struct {
	Model Generator     // nil always answers the demo insights
	Cache store.Cache   // optional
	TTL   time.Duration // of cached predictions
	Today func() date.Date
}

func demo() finpredictor.Prediction {
	return finpredictor.Prediction{
		Recommendations: append([]finpredictor.Insight(nil), DemoInsights...),
		Note:            DemoNote,
	}
}

// Predict returns insights for the user of req.
//
// Model predictions are cached per user. Model failures are logged and
// answered with the demo insights.
func (a *Advisor) Predict(ctx context.Context, req finpredictor.PredictionRequest) (finpredictor.Prediction, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return finpredictor.Prediction{}, fmt.Errorf("%w: user_id is required", finpredictor.ErrInvalid)
	}
	if a.Model == nil {
		return demo(), nil
	}

	key := "prediction:" + req.UserID
	if a.Cache != nil {
		if cached, ok := a.Cache.Get(ctx, key); ok {
			var p finpredictor.Prediction
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return p, nil
			}
		}
	}

	insights, err := a.Model.GenerateInsights(ctx, a.prompt(req))
	if err != nil {
		log.Printf("prediction for user %q: %v", req.UserID, err)
		return demo(), nil
	}
	p := finpredictor.Prediction{Recommendations: insights}

	if a.Cache != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := a.Cache.Set(ctx, key, string(data), a.TTL); err != nil {
				log.Printf("caching prediction for user %q: %v", req.UserID, err)
			}
		}
	}
	return p, nil
}

func (a *Advisor) today() date.Date {
	if a.Today == nil {
		return date.Today()
	}
	return a.Today()
}

// prompt describes the user's situation to the model.
func (a *Advisor) prompt(req finpredictor.PredictionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today is %s.\n\n", a.today())
	if req.Portfolio != nil {
		b.WriteString(renderer.PortfolioMarkdown(*req.Portfolio))
		b.WriteString("\n")
	}
	if len(req.Goals) > 0 {
		b.WriteString(renderer.GoalsMarkdown(req.Goals))
		b.WriteString("\n\n## Goal projections at the current SIP\n\n")
		for _, g := range req.Goals {
			proj, err := finpredictor.Project(g.Plan(a.today()))
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s projected in today's money for a target of %s.\n",
				g.Title, finpredictor.M(proj.FinalValue(), finpredictor.DefaultCurrency), finpredictor.M(g.TargetAmount, finpredictor.DefaultCurrency))
		}
	}
	if req.Portfolio == nil && len(req.Goals) == 0 {
		b.WriteString("The user has not shared a portfolio nor goals yet.\n")
	}
	return b.String()
}
