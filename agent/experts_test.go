package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/finpredictor"
	"google.golang.org/genai"
)

func output(t *testing.T, resp *genai.FunctionResponse) string {
	t.Helper()
	if e, ok := resp.Response["error"]; ok {
		t.Fatalf("%s returned error %v", resp.Name, e)
	}
	s, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("%s output is %T, want a string", resp.Name, resp.Response["output"])
	}
	return s
}

func TestProjectFunc(t *testing.T) {
	resp := ProjectFunc.Call(context.Background(), "1", map[string]any{
		"monthly_contribution":  8000.0,
		"annual_return_rate":    0.12,
		"annual_inflation_rate": 0.05,
		"horizon_years":         1.0,
	})
	if resp.ID != "1" || resp.Name != "project" {
		t.Errorf("response id/name = %q/%q, want 1/project", resp.ID, resp.Name)
	}
	out := output(t, resp)
	for _, want := range []string{"| Y1 | ₹96,629.00 |", "Final value: ₹96,629.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestProjectFunc_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"domain", map[string]any{"horizon_years": 1.0, "annual_inflation_rate": -1.0}},
		{"fractional years", map[string]any{"horizon_years": 1.5}},
		{"not a number", map[string]any{"horizon_years": "ten"}},
		{"bad view", map[string]any{"horizon_years": 1.0, "view": "weekly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ProjectFunc.Call(context.Background(), "1", tt.args)
			if _, ok := resp.Response["error"].(string); !ok {
				t.Errorf("Call() = %v, want an error", resp.Response)
			}
		})
	}
}

func TestRequiredSIPFunc(t *testing.T) {
	resp := RequiredSIPFunc.Call(context.Background(), "2", map[string]any{
		"target_amount":        30000.0,
		"years":                1.0,
		"expected_return_rate": 0.0,
		"inflation_rate":       0.0,
	})
	if out := output(t, resp); !strings.Contains(out, "Monthly contribution: ₹2,500.00") {
		t.Errorf("output does not contain the SIP:\n%s", out)
	}
}

type fakeRecords struct{ err error }

func (r fakeRecords) Portfolio(context.Context) (finpredictor.Portfolio, error) {
	return finpredictor.Portfolio{UserID: "u1"}, r.err
}

func (r fakeRecords) Goals(context.Context) ([]finpredictor.Goal, error) {
	return []finpredictor.Goal{{Title: "House", TargetAmount: 5000000}}, r.err
}

func TestAccountant(t *testing.T) {
	acc := NewAccountant(DefaultModel, fakeRecords{})
	ctx := context.Background()

	if out := output(t, acc.Library(ctx, &genai.FunctionCall{ID: "1", Name: "portfolio"})); !strings.Contains(out, "No assets yet.") {
		t.Errorf("portfolio output:\n%s", out)
	}
	if out := output(t, acc.Library(ctx, &genai.FunctionCall{ID: "2", Name: "goals"})); !strings.Contains(out, "House") {
		t.Errorf("goals output:\n%s", out)
	}

	resp := acc.Library(ctx, &genai.FunctionCall{ID: "3", Name: "transfer"})
	if resp.Response["error"] != "unknown function transfer" {
		t.Errorf("unknown function response = %v", resp.Response)
	}

	failing := NewAccountant(DefaultModel, fakeRecords{err: errors.New("offline")})
	if resp := failing.Library(ctx, &genai.FunctionCall{ID: "4", Name: "goals"}); resp.Response["error"] != "offline" {
		t.Errorf("failing goals response = %v", resp.Response)
	}
}

func TestFacilitatorDeclaresExperts(t *testing.T) {
	a := New(nil, strings.NewReader(""), NewPlanner(DefaultModel), NewTrader(DefaultModel))
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	if strings.Join(names, ",") != "Planner,Trader" {
		t.Errorf("facilitator tools = %v, want Planner,Trader", names)
	}
}
