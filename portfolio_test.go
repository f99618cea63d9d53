package finpredictor

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewAsset(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a, err := NewAsset("a1", AssetCreate{Type: MutualFund, Symbol: "NIFTY50", Name: "Nifty 50 Index", Units: Q(12.5), BuyPrice: INR(200)}, now)
	if err != nil {
		t.Fatalf("NewAsset() error = %v", err)
	}
	if !a.CurrentPrice.Equal(a.BuyPrice) {
		t.Errorf("CurrentPrice = %v, want the buy price %v", a.CurrentPrice, a.BuyPrice)
	}
	if !a.LastUpdated.Equal(now) {
		t.Errorf("LastUpdated = %v, want %v", a.LastUpdated, now)
	}
	if want := INR(2500); !a.Cost().Equal(want) {
		t.Errorf("Cost() = %v, want %v", a.Cost(), want)
	}
}

func TestAssetCreate_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   AssetCreate
	}{
		{"unknown type", AssetCreate{Type: "house", Symbol: "X", Units: Q(1)}},
		{"no symbol", AssetCreate{Type: Stock, Units: Q(1)}},
		{"zero units", AssetCreate{Type: Stock, Symbol: "X"}},
		{"negative price", AssetCreate{Type: Stock, Symbol: "X", Units: Q(1), BuyPrice: INR(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.in.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPortfolio_PerformanceAndAllocation(t *testing.T) {
	p := Portfolio{
		UserID: "u1",
		Assets: []Asset{
			{Type: Stock, Symbol: "INFY", Units: Q(10), BuyPrice: INR(1500), CurrentPrice: INR(1800)},
			{Type: MutualFund, Symbol: "NIFTY", Units: Q(100), BuyPrice: INR(200), CurrentPrice: INR(180)},
			{Type: Stock, Symbol: "TCS", Units: Q(2), BuyPrice: INR(3500), CurrentPrice: INR(4000)},
			{Type: Cash, Symbol: "INR", Units: Q(1), BuyPrice: INR(0), CurrentPrice: INR(0)},
		},
	}
	perf := p.Performance()
	if want := INR(42000); !perf.Cost.Equal(want) {
		t.Errorf("Cost = %v, want %v", perf.Cost, want)
	}
	if want := INR(44000); !perf.Value.Equal(want) {
		t.Errorf("Value = %v, want %v", perf.Value, want)
	}
	if want := INR(2000); !perf.Gain().Equal(want) {
		t.Errorf("Gain() = %v, want %v", perf.Gain(), want)
	}
	if want := Percent(100 * 2000.0 / 42000); !perf.Return().Equal(want) {
		t.Errorf("Return() = %v, want %v", perf.Return(), want)
	}

	want := []Slice{
		{Name: "stock", Value: 26000, Share: Percent(100 * 26000.0 / 44000)},
		{Name: "mutual_fund", Value: 18000, Share: Percent(100 * 18000.0 / 44000)},
	}
	if diff := cmp.Diff(want, p.Allocation()); diff != "" {
		t.Errorf("Allocation() mismatch (-want +got):\n%s", diff)
	}
}

func TestPortfolio_Empty(t *testing.T) {
	var p Portfolio
	if got := p.Performance().Return(); got != 0 {
		t.Errorf("Return() = %v, want 0", got)
	}
	if got := p.Allocation(); len(got) != 0 {
		t.Errorf("Allocation() = %v, want none", got)
	}
}

func TestAsset_JSON(t *testing.T) {
	body := `{"type":"stock","symbol":"INFY","name":"Infosys","units":10,"buy_price":1500.5}`
	var in AssetCreate
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.Units.Equal(Q(10)) || !in.BuyPrice.Equal(NO(1500.5)) {
		t.Errorf("Unmarshal() = %+v", in)
	}
	a, err := NewAsset("a1", in, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewAsset() error = %v", err)
	}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"a1","type":"stock","symbol":"INFY","name":"Infosys","units":10,"buy_price":1500.5,"current_price":1500.5,"last_updated":"2025-01-02T00:00:00Z"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
