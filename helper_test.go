package finpredictor

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }
