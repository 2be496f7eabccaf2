package domain

import "time"

// Account is a registered identity. Email is globally unique and matched
// case-sensitively exactly as stored. OnboardingCompleted is one-way: once
// true it never reverts through normal flow.
type Account struct {
	ID                  string
	Email               string
	PasswordHash        string
	Name                string
	Role                Role
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CandidateProfile is the empty shell provisioned at registration. The
// onboarding flow fills it in later.
type CandidateProfile struct {
	ID        string
	AccountID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyProfile is the empty shell provisioned at registration. Name starts
// as an empty placeholder and is completed on the profile edit page.
type CompanyProfile struct {
	ID        string
	AccountID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
