package finpredictor

import (
	"math"
	"strings"

	"github.com/etnz/finpredictor/date"
)

// GoalCreate holds what a user provides to create a financial goal.
type GoalCreate struct {
	Title              string    `json:"title" binding:"required"`
	TargetAmount       float64   `json:"target_amount" binding:"gt=0"`
	TargetDate         date.Date `json:"target_date"`
	StartingAmount     float64   `json:"starting_amount" binding:"gte=0"`
	CurrentSIP         float64   `json:"current_sip" binding:"gte=0"`
	ExpectedReturnRate Rate      `json:"expected_return_rate"`
	InflationRate      Rate      `json:"inflation_rate"`
	SalaryGrowthRate   Rate      `json:"salary_growth_rate"`
}

// NewGoalCreate returns a GoalCreate with the default rates: 12% expected
// return, 5% inflation and 5% salary growth.
//
// Decoding JSON into it keeps the defaults for missing fields.
func NewGoalCreate() GoalCreate {
	return GoalCreate{
		ExpectedReturnRate: 0.12,
		InflationRate:      0.05,
		SalaryGrowthRate:   0.05,
	}
}

// Goal is a financial goal with its recommended monthly contribution.
type Goal struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Title              string    `json:"title"`
	TargetAmount       float64   `json:"target_amount"`
	TargetDate         date.Date `json:"target_date"`
	StartingAmount     float64   `json:"starting_amount"`
	CurrentSIP         float64   `json:"current_sip"`
	RecommendedSIP     float64   `json:"recommended_sip"`
	ExpectedReturnRate Rate      `json:"expected_return_rate"`
	InflationRate      Rate      `json:"inflation_rate"`
	SalaryGrowthRate   Rate      `json:"salary_growth_rate"`
	CurrentProgress    Percent   `json:"current_progress"`
}

// NewGoal validates in and computes the goal's recommended SIP as of today.
//
// The stored current SIP is never lower than the recommended one.
func NewGoal(id, userID string, in GoalCreate, today date.Date) (Goal, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Goal{}, invalidf("goal title is required")
	}
	if in.TargetAmount <= 0 {
		return Goal{}, invalidf("target amount must be positive, got %v", in.TargetAmount)
	}
	if in.StartingAmount < 0 {
		return Goal{}, invalidf("starting amount must not be negative, got %v", in.StartingAmount)
	}
	if in.TargetDate.IsZero() {
		return Goal{}, invalidf("target date is required")
	}

	years := math.Max(today.YearsUntil(in.TargetDate), 0)
	recommended, err := RequiredSIP(in.TargetAmount, years, in.ExpectedReturnRate, in.InflationRate, in.StartingAmount)
	if err != nil {
		return Goal{}, err
	}

	return Goal{
		ID:                 id,
		UserID:             userID,
		Title:              in.Title,
		TargetAmount:       in.TargetAmount,
		TargetDate:         in.TargetDate,
		StartingAmount:     in.StartingAmount,
		CurrentSIP:         math.Max(in.CurrentSIP, recommended),
		RecommendedSIP:     recommended,
		ExpectedReturnRate: in.ExpectedReturnRate,
		InflationRate:      in.InflationRate,
		SalaryGrowthRate:   in.SalaryGrowthRate,
		CurrentProgress:    progress(in.StartingAmount, in.TargetAmount),
	}, nil
}

// progress returns the share of target already covered, clamped to [0,100].
func progress(saved, target float64) Percent {
	if target <= 0 {
		return 0
	}
	return Percent(math.Min(math.Max(100*saved/target, 0), 100))
}

// Plan returns the projection request of the goal's current SIP, over the
// whole years left until the target date (rounded up).
func (g Goal) Plan(today date.Date) Request {
	years := math.Max(today.YearsUntil(g.TargetDate), 0)
	return Request{
		Starting:  g.StartingAmount,
		Monthly:   g.CurrentSIP,
		Return:    g.ExpectedReturnRate,
		Inflation: g.InflationRate,
		Years:     int(math.Ceil(years)),
	}
}
