package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/finpredictor"
)

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func TestPortfolios(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	s := NewPortfolios()
	s.Clock = fixedClock(now)

	if got := s.Get(ctx, "u1"); got.UserID != "u1" || got.Assets == nil || len(got.Assets) != 0 {
		t.Fatalf("Get() on an empty store = %+v, want an empty portfolio", got)
	}

	var ids []string
	for _, sym := range []string{"INFY", "TCS", "HDFC"} {
		a, err := s.Add(ctx, "u1", finpredictor.AssetCreate{
			Type:     finpredictor.Stock,
			Symbol:   sym,
			Units:    finpredictor.Q(10),
			BuyPrice: finpredictor.M(100, "INR"),
		})
		if err != nil {
			t.Fatalf("Add(%s) error = %v", sym, err)
		}
		if !a.LastUpdated.Equal(now) {
			t.Errorf("Add(%s) last updated = %v, want %v", sym, a.LastUpdated, now)
		}
		ids = append(ids, a.ID)
	}

	if err := s.Delete(ctx, "u1", ids[1]); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got := s.Get(ctx, "u1")
	if len(got.Assets) != 2 || got.Assets[0].Symbol != "INFY" || got.Assets[1].Symbol != "HDFC" {
		t.Errorf("Get() = %v, want INFY then HDFC", got.Assets)
	}

	if other := s.Get(ctx, "u2"); len(other.Assets) != 0 {
		t.Errorf("Get(u2) = %v, want no assets", other.Assets)
	}
}

func TestPortfolios_Errors(t *testing.T) {
	ctx := context.Background()
	s := NewPortfolios()

	if _, err := s.Add(ctx, "u1", finpredictor.AssetCreate{Type: "gold", Symbol: "X", Units: finpredictor.Q(1)}); !errors.Is(err, finpredictor.ErrInvalid) {
		t.Errorf("Add(gold) error = %v, want %v", err, finpredictor.ErrInvalid)
	}
	if err := s.Delete(ctx, "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want %v", err, ErrNotFound)
	}
}
