package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/etnz/finpredictor"
)

// Goals stores the financial goals of every user.
type Goals struct {
	Clock Clock

	mu     sync.RWMutex
	byUser map[string]*ordered[finpredictor.Goal]
}

// NewGoals returns an empty goal store.
func NewGoals() *Goals {
	return &Goals{byUser: make(map[string]*ordered[finpredictor.Goal])}
}

// List returns the goals of a user in creation order.
func (s *Goals) List(_ context.Context, userID string) []finpredictor.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if goals, ok := s.byUser[userID]; ok {
		return goals.list()
	}
	return []finpredictor.Goal{}
}

// Create computes the recommended SIP of the goal as of today and stores it.
func (s *Goals) Create(_ context.Context, userID string, in finpredictor.GoalCreate) (finpredictor.Goal, error) {
	g, err := finpredictor.NewGoal(newID(), userID, in, s.Clock.today())
	if err != nil {
		return finpredictor.Goal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	goals, ok := s.byUser[userID]
	if !ok {
		goals = new(ordered[finpredictor.Goal])
		s.byUser[userID] = goals
	}
	goals.put(g.ID, g)
	return g, nil
}

// Delete removes a goal of the user.
func (s *Goals) Delete(_ context.Context, userID, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if goals, ok := s.byUser[userID]; ok && goals.delete(goalID) {
		return nil
	}
	return fmt.Errorf("goal %q of user %q: %w", goalID, userID, ErrNotFound)
}
