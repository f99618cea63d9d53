package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/etnz/finpredictor"
)

// Portfolios stores the assets of every user.
type Portfolios struct {
	Clock Clock

	mu     sync.RWMutex
	byUser map[string]*ordered[finpredictor.Asset]
}

// NewPortfolios returns an empty portfolio store.
func NewPortfolios() *Portfolios {
	return &Portfolios{byUser: make(map[string]*ordered[finpredictor.Asset])}
}

// Get returns the portfolio of a user, assets in the order they were added.
// A user without assets has an empty portfolio.
func (s *Portfolios) Get(_ context.Context, userID string) finpredictor.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := finpredictor.Portfolio{UserID: userID, Assets: []finpredictor.Asset{}}
	if assets, ok := s.byUser[userID]; ok {
		p.Assets = assets.list()
	}
	return p
}

// Add validates in and adds it to the user's portfolio.
func (s *Portfolios) Add(_ context.Context, userID string, in finpredictor.AssetCreate) (finpredictor.Asset, error) {
	a, err := finpredictor.NewAsset(newID(), in, s.Clock.now())
	if err != nil {
		return finpredictor.Asset{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	assets, ok := s.byUser[userID]
	if !ok {
		assets = new(ordered[finpredictor.Asset])
		s.byUser[userID] = assets
	}
	assets.put(a.ID, a)
	return a, nil
}

// Delete removes an asset from the user's portfolio.
func (s *Portfolios) Delete(_ context.Context, userID, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if assets, ok := s.byUser[userID]; ok && assets.delete(assetID) {
		return nil
	}
	return fmt.Errorf("asset %q of user %q: %w", assetID, userID, ErrNotFound)
}
