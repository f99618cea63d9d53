package finpredictor

import (
	"net/mail"
	"strings"

	"github.com/etnz/finpredictor/date"
)

// RiskProfile is the user's appetite for risk.
type RiskProfile string

const (
	LowRisk      RiskProfile = "low"
	ModerateRisk RiskProfile = "moderate"
	HighRisk     RiskProfile = "high"
)

// ParseRiskProfile parses "low", "moderate" or "high". An empty string is moderate.
func ParseRiskProfile(s string) (RiskProfile, error) {
	switch p := RiskProfile(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ModerateRisk, nil
	case LowRisk, ModerateRisk, HighRisk:
		return p, nil
	}
	return "", invalidf("unknown risk profile %q, want low, moderate or high", s)
}

// User is a registered user. It never carries the password.
type User struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Age             int         `json:"age"`
	DOB             date.Date   `json:"dob"`
	Email           string      `json:"email"`
	ProfilePhotoURL string      `json:"profile_photo_url,omitempty"`
	RiskProfile     RiskProfile `json:"risk_profile,omitempty"`
	MonthlyIncome   float64     `json:"monthly_income,omitempty"`
}

// Context returns the UserContext of u.
func (u User) Context() UserContext {
	return UserContext{UserID: u.ID, RiskProfile: u.RiskProfile}
}

// UserCreate holds a signup request.
type UserCreate struct {
	Name            string      `json:"name" binding:"required"`
	Age             int         `json:"age" binding:"gte=0"`
	DOB             date.Date   `json:"dob"`
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required"`
	ProfilePhotoURL string      `json:"profile_photo_url"`
	RiskProfile     RiskProfile `json:"risk_profile"`
	MonthlyIncome   float64     `json:"monthly_income"`
}

// Validate checks the request and normalizes the email and risk profile.
func (u *UserCreate) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return invalidf("name is required")
	}
	if u.Password == "" {
		return invalidf("password is required")
	}
	addr, err := mail.ParseAddress(u.Email)
	if err != nil {
		return invalidf("invalid email %q", u.Email)
	}
	u.Email = strings.ToLower(addr.Address)
	u.RiskProfile, err = ParseRiskProfile(string(u.RiskProfile))
	return err
}

// Credentials holds a login request.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserContext identifies the user a component works for. It is passed
// explicitly rather than read from a session.
type UserContext struct {
	UserID      string
	RiskProfile RiskProfile
}
