package finpredictor

import "math"

// RequiredSIP returns the monthly contribution needed to reach target in
// years, once the target is grown by inflation and the starting amount has
// compounded at ret for the same duration.
//
// The horizon is counted in whole months (int(years*12)). A goal due within
// the month (zero whole months) needs the whole remaining amount as a single
// contribution, whatever the return: no annuity factor applies. A target
// already covered by the starting amount requires no contribution.
func RequiredSIP(target, years float64, ret, inflation Rate, starting float64) (float64, error) {
	const op = "required sip"
	for _, v := range []float64{target, years, float64(ret), float64(inflation), starting} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &DomainError{Op: op, Field: "input", Value: v}
		}
	}
	if inflation <= -1 {
		return 0, &DomainError{Op: op, Field: "inflation rate", Value: float64(inflation)}
	}
	if years < 0 {
		years = 0
	}

	inflatedTarget := target * math.Pow(1+float64(inflation), years)
	r := ret.Monthly()
	n := int(years * 12)
	lumpsum := starting * math.Pow(1+r, float64(n))
	needed := math.Max(inflatedTarget-lumpsum, 0)

	if r == 0 || n == 0 {
		return needed / float64(max(n, 1)), nil
	}
	factor := (math.Pow(1+r, float64(n)) - 1) / r
	return needed / math.Max(factor, 1e-9), nil
}
