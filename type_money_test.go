package finpredictor

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{INR(96629), "₹96,629.00"},
		{INR(-1500.255), "-₹1,500.26"},
		{NO(12.5), "12.50"},
		{M(1000, "USD"), "$1,000.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := INR(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := INR(10).SignedString(); got != "+₹10.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+₹10.00")
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	got := NO(5).Add(INR(10))
	if got.Currency() != "INR" || !got.Equal(INR(15)) {
		t.Errorf("Add() = %v %q, want ₹15 in INR", got, got.Currency())
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in      string
		want    Rate
		wantErr bool
	}{
		{"0.12", 0.12, false},
		{"12%", 0.12, false},
		{" -5% ", -0.05, false},
		{"twelve", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !got.Percent().Equal(tt.want.Percent()) {
			t.Errorf("ParseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
