package finpredictor

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// AssetType classifies an asset.
type AssetType string

const (
	Stock      AssetType = "stock"
	MutualFund AssetType = "mutual_fund"
	Crypto     AssetType = "crypto"
	Bond       AssetType = "bond"
	Cash       AssetType = "cash"
	Other      AssetType = "other"
)

var assetTypes = []AssetType{Stock, MutualFund, Crypto, Bond, Cash, Other}

// ParseAssetType parses a known asset type, case insensitive.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(assetTypes, t) {
		return "", invalidf("unknown asset type %q", s)
	}
	return t, nil
}

// AssetCreate holds what a user provides to add an asset to a portfolio.
type AssetCreate struct {
	Type     AssetType `json:"type" binding:"required"`
	Symbol   string    `json:"symbol" binding:"required"`
	Name     string    `json:"name"`
	Units    Quantity  `json:"units"`
	BuyPrice Money     `json:"buy_price"`
}

// Validate reports the first invalid field of a.
func (a AssetCreate) Validate() error {
	if _, err := ParseAssetType(string(a.Type)); err != nil {
		return err
	}
	if strings.TrimSpace(a.Symbol) == "" {
		return invalidf("asset symbol is required")
	}
	if !a.Units.IsPositive() {
		return invalidf("units must be positive, got %v", a.Units)
	}
	if a.BuyPrice.IsNegative() {
		return invalidf("buy price must not be negative, got %v", a.BuyPrice.Float())
	}
	return nil
}

// Asset is a position held in a portfolio.
type Asset struct {
	ID           string    `json:"id"`
	Type         AssetType `json:"type"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Units        Quantity  `json:"units"`
	BuyPrice     Money     `json:"buy_price"`
	CurrentPrice Money     `json:"current_price"`
	LastUpdated  time.Time `json:"last_updated"`
}

// NewAsset creates an asset priced at its buy price.
func NewAsset(id string, in AssetCreate, now time.Time) (Asset, error) {
	if err := in.Validate(); err != nil {
		return Asset{}, err
	}
	return Asset{
		ID:           id,
		Type:         in.Type,
		Symbol:       in.Symbol,
		Name:         in.Name,
		Units:        in.Units,
		BuyPrice:     in.BuyPrice,
		CurrentPrice: in.BuyPrice,
		LastUpdated:  now,
	}, nil
}

// Cost returns what was paid for the asset.
func (a Asset) Cost() Money { return a.BuyPrice.Mul(a.Units) }

// Value returns the market value of the asset.
func (a Asset) Value() Money { return a.CurrentPrice.Mul(a.Units) }

// Performance compares the asset's cost and value.
func (a Asset) Performance() Performance { return NewPerformance(a.Cost(), a.Value()) }

// Portfolio is the list of assets of a user.
type Portfolio struct {
	UserID string  `json:"user_id"`
	Assets []Asset `json:"assets"`
}

// Performance compares the total cost and value of the portfolio.
func (p Portfolio) Performance() Performance {
	var perf Performance
	for _, a := range p.Assets {
		perf.Cost = perf.Cost.Add(a.Cost())
		perf.Value = perf.Value.Add(a.Value())
	}
	return perf
}

// Slice is one part of an allocation.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Share Percent `json:"share"`
}

// Allocation returns the market value held per asset type, largest first.
// Types with no value are omitted.
func (p Portfolio) Allocation() []Slice {
	byType := make(map[AssetType]Money)
	var total Money
	for _, a := range p.Assets {
		v := a.Value()
		byType[a.Type] = byType[a.Type].Add(v)
		total = total.Add(v)
	}

	out := make([]Slice, 0, len(byType))
	for _, t := range assetTypes {
		v, ok := byType[t]
		if !ok || v.IsZero() {
			continue
		}
		var share Percent
		if !total.IsZero() {
			share = Percent(100 * v.Float() / total.Float())
		}
		out = append(out, Slice{Name: string(t), Value: v.Round(2).Float(), Share: share})
	}
	sortSlices(out)
	return out
}

func sortSlices(s []Slice) {
	slices.SortStableFunc(s, func(a, b Slice) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})
}

func (a Asset) String() string {
	return fmt.Sprintf("%s %s x %s", a.Type, a.Symbol, a.Units)
}
