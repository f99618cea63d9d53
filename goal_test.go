package finpredictor

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/etnz/finpredictor/date"
)

func TestNewGoal(t *testing.T) {
	today := date.New(2025, 1, 1)
	in := NewGoalCreate()
	in.Title = "Buy a House"
	in.TargetAmount = 1000000
	in.TargetDate = date.New(2035, 1, 1)

	g, err := NewGoal("g1", "u1", in, today)
	if err != nil {
		t.Fatalf("NewGoal() error = %v", err)
	}
	if g.ID != "g1" || g.UserID != "u1" || g.Title != "Buy a House" {
		t.Errorf("NewGoal() identity = %q %q %q", g.ID, g.UserID, g.Title)
	}
	if math.Abs(g.RecommendedSIP-7080.9594) > 1e-3 {
		t.Errorf("RecommendedSIP = %v, want 7080.9594", g.RecommendedSIP)
	}
	if g.CurrentSIP != g.RecommendedSIP {
		t.Errorf("CurrentSIP = %v, want the recommended %v", g.CurrentSIP, g.RecommendedSIP)
	}
	if g.CurrentProgress != 0 {
		t.Errorf("CurrentProgress = %v, want 0", g.CurrentProgress)
	}
}

func TestNewGoal_KeepsHigherCurrentSIP(t *testing.T) {
	in := NewGoalCreate()
	in.Title = "Car"
	in.TargetAmount = 100000
	in.StartingAmount = 25000
	in.CurrentSIP = 50000
	in.TargetDate = date.New(2027, 1, 1)

	g, err := NewGoal("g", "u", in, date.New(2025, 1, 1))
	if err != nil {
		t.Fatalf("NewGoal() error = %v", err)
	}
	if g.CurrentSIP != 50000 {
		t.Errorf("CurrentSIP = %v, want 50000", g.CurrentSIP)
	}
	if g.RecommendedSIP >= 50000 {
		t.Errorf("RecommendedSIP = %v, want below the current SIP", g.RecommendedSIP)
	}
	if !g.CurrentProgress.Equal(25) {
		t.Errorf("CurrentProgress = %v, want 25%%", g.CurrentProgress)
	}
}

func TestNewGoal_Invalid(t *testing.T) {
	valid := NewGoalCreate()
	valid.Title = "Trip"
	valid.TargetAmount = 1000
	valid.TargetDate = date.New(2030, 1, 1)

	tests := []struct {
		name   string
		modify func(*GoalCreate)
		target error
	}{
		{"no title", func(g *GoalCreate) { g.Title = "  " }, ErrInvalid},
		{"zero target", func(g *GoalCreate) { g.TargetAmount = 0 }, ErrInvalid},
		{"negative starting", func(g *GoalCreate) { g.StartingAmount = -1 }, ErrInvalid},
		{"no target date", func(g *GoalCreate) { g.TargetDate = date.Date{} }, ErrInvalid},
		{"inflation -100%", func(g *GoalCreate) { g.InflationRate = -1 }, ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)
			if _, err := NewGoal("g", "u", in, date.New(2025, 1, 1)); !errors.Is(err, tt.target) {
				t.Errorf("NewGoal() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestGoalCreate_JSONDefaults(t *testing.T) {
	in := NewGoalCreate()
	body := `{"title":"Retire","target_amount":5000000,"target_date":"2045-06-01","inflation_rate":0.07}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if in.ExpectedReturnRate != 0.12 || in.SalaryGrowthRate != 0.05 {
		t.Errorf("defaults lost: return %v salary growth %v", in.ExpectedReturnRate, in.SalaryGrowthRate)
	}
	if in.InflationRate != 0.07 {
		t.Errorf("InflationRate = %v, want 0.07", in.InflationRate)
	}
	if in.TargetDate != date.New(2045, 6, 1) {
		t.Errorf("TargetDate = %v, want 2045-06-01", in.TargetDate)
	}
}

func TestGoal_Plan(t *testing.T) {
	g := Goal{
		TargetDate:         date.New(2030, 7, 1),
		StartingAmount:     1000,
		CurrentSIP:         200,
		ExpectedReturnRate: 0.1,
		InflationRate:      0.04,
	}
	got := g.Plan(date.New(2025, 1, 1))
	want := Request{Starting: 1000, Monthly: 200, Return: 0.1, Inflation: 0.04, Years: 6}
	if got != want {
		t.Errorf("Plan() = %+v, want %+v", got, want)
	}
}
