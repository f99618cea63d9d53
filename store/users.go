package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/etnz/finpredictor"
	"golang.org/x/crypto/bcrypt"
)

type userRecord struct {
	user     finpredictor.User
	hash []byte // bcrypt
}

// Users stores registered users.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]userRecord
	byEmail map[string]string
	cost    int // bcrypt cost
}

// NewUsers returns an empty user store.
func NewUsers() *Users {
	return &Users{
		byID:    make(map[string]userRecord),
		byEmail: make(map[string]string),
		cost:    bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// Signup registers a new user. The email must not be registered yet.
func (s *Users) Signup(_ context.Context, in finpredictor.UserCreate) (finpredictor.User, error) {
	if err := in.Validate(); err != nil {
		return finpredictor.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return finpredictor.User{}, fmt.Errorf("%w: password longer than 72 bytes", finpredictor.ErrInvalid)
	}
	if err != nil {
		return finpredictor.User{}, fmt.Errorf("signup %q: %w", in.Email, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[in.Email]; taken {
		return finpredictor.User{}, fmt.Errorf("signup %q: %w", in.Email, ErrEmailTaken)
	}
	u := finpredictor.User{
		ID:              newID(),
		Name:            in.Name,
		Age:             in.Age,
		DOB:             in.DOB,
		Email:           in.Email,
		ProfilePhotoURL: in.ProfilePhotoURL,
		RiskProfile:     in.RiskProfile,
		MonthlyIncome:   in.MonthlyIncome,
	}
	s.byID[u.ID] = userRecord{user: u, hash: hash}
	s.byEmail[u.Email] = u.ID
	return u, nil
}

// Login returns the user registered with these credentials.
// An unknown email and a wrong password are reported the same way.
func (s *Users) Login(_ context.Context, c finpredictor.Credentials) (finpredictor.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[normalizeEmail(c.Email)]
	if !ok {
		return finpredictor.User{}, ErrInvalidCredentials
	}
	rec := s.byID[id]
	if bcrypt.CompareHashAndPassword(rec.hash, []byte(c.Password)) != nil {
		return finpredictor.User{}, ErrInvalidCredentials
	}
	return rec.user, nil
}

// Get returns the user with this id.
func (s *Users) Get(_ context.Context, id string) (finpredictor.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[id]
	if !ok {
		return finpredictor.User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return rec.user, nil
}
