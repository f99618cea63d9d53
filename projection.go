package finpredictor

import (
	"math"
	"strconv"
)

// Request is a monthly investment plan to project.
type Request struct {
	Starting  float64 `json:"starting_amount"`      // amount invested at month 0
	Monthly   float64 `json:"monthly_contribution"` // SIP, negative for withdrawals
	Return    Rate    `json:"annual_return_rate"`
	Inflation Rate    `json:"annual_inflation_rate"`
	Years     int     `json:"horizon_years"`
}

// Months returns the number of compounding periods in the plan.
func (r Request) Months() int { return r.Years * 12 }

// Point is the inflation-adjusted value of the plan at the end of a month.
type Point struct {
	Month int     `json:"month"`
	Label string  `json:"date"`
	Value float64 `json:"value"`
}

// Projection is the month-by-month value of a Request, from month 0 to the
// horizon inclusive. It is never modified once computed.
type Projection []Point

// Project computes the monthly projection of the plan.
//
// Each month the nominal value grows by the nominal monthly rate (Return/12)
// and then receives the contribution (ordinary annuity). The value reported
// for month m is deflated by (1+Inflation)^(m/12), with a fractional exponent,
// and rounded to the nearest unit.
//
// Project fails with a DomainError if the inflation rate is -100% or lower,
// or if any input is not finite, and with ErrInvalid for a negative horizon
// or one longer than MaxYears.
func Project(req Request) (Projection, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	months := req.Months()
	monthly := req.Return.Monthly()
	deflator := 1 + float64(req.Inflation)

	points := make(Projection, 0, months+1)
	nominal := req.Starting
	for m := 0; m <= months; m++ {
		if m > 0 {
			nominal = nominal*(1+monthly) + req.Monthly
		}
		adjusted := nominal / math.Pow(deflator, float64(m)/12)
		points = append(points, Point{
			Month: m,
			Label: "M" + strconv.Itoa(m),
			Value: math.Round(adjusted),
		})
	}
	return points, nil
}

// MaxYears bounds the horizon of a projection.
const MaxYears = 1000

func (r Request) validate() error {
	const op = "project"
	if r.Years < 0 {
		return invalidf("horizon must not be negative, got %d years", r.Years)
	}
	if r.Years > MaxYears {
		return invalidf("horizon must not exceed %d years, got %d", MaxYears, r.Years)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"starting amount", r.Starting},
		{"monthly contribution", r.Monthly},
		{"annual return rate", float64(r.Return)},
		{"annual inflation rate", float64(r.Inflation)},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &DomainError{Op: op, Field: f.name, Value: f.value}
		}
	}
	// (1+inflation)^(m/12) must stay a positive divisor for every m > 0.
	if r.Years > 0 && r.Inflation <= -1 {
		return &DomainError{Op: op, Field: "annual inflation rate", Value: float64(r.Inflation)}
	}
	return nil
}

// Yearly keeps the points falling on a whole year and relabels them "Y<n>".
func (p Projection) Yearly() Projection {
	yearly := make(Projection, 0, len(p)/12+1)
	for _, pt := range p {
		if pt.Month%12 != 0 {
			continue
		}
		pt.Label = "Y" + strconv.Itoa(pt.Month/12)
		yearly = append(yearly, pt)
	}
	return yearly
}

// FinalValue returns the value at the horizon, 0 for an empty projection.
func (p Projection) FinalValue() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Value
}

// View selects how a projection is presented.
type View string

const (
	MonthlyView View = "monthly"
	YearlyView  View = "yearly"
)

// ParseView parses "monthly" or "yearly". An empty string is the monthly view.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", MonthlyView:
		return MonthlyView, nil
	case YearlyView:
		return YearlyView, nil
	}
	return "", invalidf("unknown view %q, want %q or %q", s, MonthlyView, YearlyView)
}

// In returns the projection as presented in view v.
func (p Projection) In(v View) Projection {
	if v == YearlyView {
		return p.Yearly()
	}
	return p
}
