package cmd

import (
	"flag"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/date"
)

// rateValue is a flag.Value accepting "0.12" or "12%".
type rateValue struct{ r *finpredictor.Rate }

func (v rateValue) String() string {
	if v.r == nil {
		return ""
	}
	return v.r.String()
}

func (v rateValue) Set(s string) error {
	r, err := finpredictor.ParseRate(s)
	if err != nil {
		return err
	}
	*v.r = r
	return nil
}

func rateVar(f *flag.FlagSet, r *finpredictor.Rate, name string, value finpredictor.Rate, usage string) {
	*r = value
	f.Var(rateValue{r}, name, usage)
}

// dateValue is a flag.Value parsing dates like 2030-06-01.
type dateValue struct{ d *date.Date }

func (v dateValue) String() string {
	if v.d == nil || v.d.IsZero() {
		return ""
	}
	return v.d.String()
}

func (v dateValue) Set(s string) error {
	d, err := date.Parse(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}
