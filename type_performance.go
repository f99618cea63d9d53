package finpredictor

// Performance compares what was invested with what it is worth now.
type Performance struct {
	Cost, Value Money
}

func NewPerformance(cost, value Money) Performance {
	return Performance{Cost: cost, Value: value}
}

// Gain returns the unrealized gain (negative for a loss).
func (p Performance) Gain() Money {
	return p.Value.Sub(p.Cost)
}

// Return returns the gain relative to the cost, 0 when nothing was invested.
func (p Performance) Return() Percent {
	if p.Cost.IsZero() {
		return 0
	}
	return Percent(100 * p.Gain().Float() / p.Cost.Float())
}
