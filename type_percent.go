package finpredictor

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is a value expressed in percent (12.5 means 12.5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Rate is an annual rate expressed as a decimal fraction (0.12 means 12% a year).
type Rate float64

// Monthly returns the nominal monthly rate, the annual rate divided by 12.
//
// It is not the geometric monthly equivalent (1+r)^(1/12)-1: projections are
// defined on the nominal rate.
func (r Rate) Monthly() float64 { return float64(r) / 12 }

// Percent returns the rate in percent.
func (r Rate) Percent() Percent { return Percent(100 * r) }

func (r Rate) String() string { return r.Percent().String() }

// ParseRate parses a rate either as a decimal fraction ("0.12") or as a
// percentage ("12%").
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", s, ErrInvalid)
	}
	if pct {
		v /= 100
	}
	return Rate(v), nil
}
