package agent

import (
	"context"
	"fmt"
	"math"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used unless configured otherwise.
const DefaultModel = "gemini-2.5-flash"

func instruction(s string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: s}}}
}

func newFacilitator(experts ...*Expert) *Expert {
	model := DefaultModel
	if len(experts) > 0 {
		model = experts[0].ModelName
	}
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			The user is here to plan investments: monthly SIPs, financial goals,
			and what their savings will be worth once inflation is accounted for.
			Amounts are in Indian rupees unless the user says otherwise.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
			Check the user's portfolio and goals first when the question refers to them.`),
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search for market news.
func NewTrader(model string) *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader, aware of financial products, institutions and
		the latest news about funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in trading, you can search and find anything related to
			financial institutions, companies, markets and funds, Indian markets first.
			Leverage Google Search to ground your assertions.`),
		},
	}
}

// NewPlanner returns an expert running projections and required SIP calculations.
func NewPlanner(model string) *Expert {
	lib := []Function{ProjectFunc, RequiredSIPFunc}
	return &Expert{
		Name: "Planner",
		Description: `This is the financial Planner. It computes how savings grow with a monthly SIP,
		in today's money, and which SIP is required to reach a goal.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a financial planner. Never compute projections yourself: use the Tools.
			Rates are annual decimal fractions: 12% is 0.12.
			Explain results in today's money, the tools already deflate them.`),
		},
		Library: NewLibrary(lib),
	}
}

// Records gives access to the data of the current user.
type Records interface {
	Portfolio(ctx context.Context) (finpredictor.Portfolio, error)
	Goals(ctx context.Context) ([]finpredictor.Goal, error)
}

// NewAccountant returns an expert reading the user's portfolio and goals.
func NewAccountant(model string, records Records) *Expert {
	lib := []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "portfolio",
				Description: "Lists the assets of the user's portfolio with their cost, value and the allocation per asset type.",
				Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown report of the portfolio."},
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				p, err := records.Portfolio(ctx)
				if err != nil {
					return "", err
				}
				return renderer.PortfolioMarkdown(p), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "goals",
				Description: "Lists the user's financial goals with their target, date, recommended and current SIP.",
				Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown table of the goals."},
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				goals, err := records.Goals(ctx)
				if err != nil {
					return "", err
				}
				return renderer.GoalsMarkdown(goals), nil
			},
		},
	}
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. It reads the user's portfolio and financial goals.
		Ask it about current holdings, what was invested and what the goals are.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are an accountant in charge of the user's portfolio and goals.
			Use the Tools to get the figures, pardon the approximative language of the other experts.`),
		},
		Library: NewLibrary(lib),
	}
}

func rate(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description + " Annual decimal fraction, 0.12 means 12%."}
}

// ProjectFunc projects savings month by month, in today's money.
var ProjectFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "project",
		Description: "Projects the inflation-adjusted value of savings growing with a fixed monthly contribution.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"starting_amount":       {Type: genai.TypeNumber, Description: "Amount invested today."},
				"monthly_contribution":  {Type: genai.TypeNumber, Description: "Amount added at the end of every month, negative for withdrawals."},
				"annual_return_rate":    rate("Expected return."),
				"annual_inflation_rate": rate("Expected inflation."),
				"horizon_years":         {Type: genai.TypeInteger, Description: "Number of whole years to project."},
				"view":                  {Type: genai.TypeString, Enum: []string{"monthly", "yearly"}, Description: "yearly keeps one value per year. Default is yearly."},
			},
			Required: []string{"horizon_years"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown report of the projection."},
	},
	Func: func(_ context.Context, args map[string]any) (string, error) {
		var req finpredictor.Request
		var err error
		get := func(name string, v *float64) {
			if err == nil {
				*v, err = number(args, name, 0)
			}
		}
		var ret, infl, years float64
		get("starting_amount", &req.Starting)
		get("monthly_contribution", &req.Monthly)
		get("annual_return_rate", &ret)
		get("annual_inflation_rate", &infl)
		get("horizon_years", &years)
		if err != nil {
			return "", err
		}
		if years != math.Trunc(years) {
			return "", fmt.Errorf("horizon_years must be a whole number of years, got %v", years)
		}
		req.Return, req.Inflation, req.Years = finpredictor.Rate(ret), finpredictor.Rate(infl), int(years)

		view := finpredictor.YearlyView
		if s, ok := args["view"].(string); ok {
			if view, err = finpredictor.ParseView(s); err != nil {
				return "", err
			}
		}
		points, err := finpredictor.Project(req)
		if err != nil {
			return "", err
		}
		return renderer.ProjectionMarkdown(req, view, points.In(view)), nil
	},
}

// RequiredSIPFunc computes the monthly contribution needed to reach a target.
var RequiredSIPFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "required_sip",
		Description: "Computes the monthly SIP needed to reach a target amount, expressed in today's money, in a number of years.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"target_amount":        {Type: genai.TypeNumber, Description: "Target in today's money."},
				"years":                {Type: genai.TypeNumber, Description: "Years until the target date, may be fractional."},
				"starting_amount":      {Type: genai.TypeNumber, Description: "Amount already invested."},
				"expected_return_rate": rate("Expected return, 0.12 when unknown."),
				"inflation_rate":       rate("Expected inflation, 0.05 when unknown."),
			},
			Required: []string{"target_amount", "years"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown report with the monthly contribution."},
	},
	Func: func(_ context.Context, args map[string]any) (string, error) {
		s := renderer.SIP{}
		var ret, infl float64
		for _, a := range []struct {
			name string
			v    *float64
			def  float64
		}{
			{"target_amount", &s.Target, 0},
			{"years", &s.Years, 0},
			{"starting_amount", &s.Starting, 0},
			{"expected_return_rate", &ret, 0.12},
			{"inflation_rate", &infl, 0.05},
		} {
			v, err := number(args, a.name, a.def)
			if err != nil {
				return "", err
			}
			*a.v = v
		}
		s.Return, s.Inflation = finpredictor.Rate(ret), finpredictor.Rate(infl)

		var err error
		s.Monthly, err = finpredictor.RequiredSIP(s.Target, s.Years, s.Return, s.Inflation, s.Starting)
		if err != nil {
			return "", err
		}
		return renderer.SIPMarkdown(s), nil
	},
}
