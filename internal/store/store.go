package store

import (
	"context"
	"errors"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement it. Sub-repositories keep concerns tidy and let services pick
// exactly the surface they need in tests.
type Store interface {
	Accounts() Accounts
	Invitations() Invitations
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A non-nil error from fn
	// rolls the transaction back, nil commits it. Registration uses this
	// so account creation, profile provisioning and invitation consumption
	// commit or fail as one unit.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id. Session claim refresh
	// depends on this being a single cheap read.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is a case-sensitive exact match, used by the
	// credential verifier and the duplicate-email check.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateAccountName mutates the display name and bumps updated_at.
	UpdateAccountName(ctx context.Context, accountID, name string) error

	// UpdateAccountRole is the administrative role override. Normal flows
	// never change a role after registration.
	UpdateAccountRole(ctx context.Context, accountID string, role domain.Role) error

	// CompleteOnboarding flips onboarding_completed to true. The flag is
	// monotonic: there is deliberately no way to clear it.
	CompleteOnboarding(ctx context.Context, accountID string) error

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

type Invitations interface {
	// CreateInvitation writes a new invitation row. The opaque token is
	// stored verbatim; it is both the capability and the lookup key.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByToken returns the invitation regardless of used or
	// expired state; validation policy lives in the service.
	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// ConsumeInvitation conditionally marks the invitation used. The update
	// only applies when used=0 and expires_at is still in the future, so
	// concurrent consumers serialize: exactly one sees a hit, the rest get
	// ErrNotFound and must treat the invitation as already used.
	ConsumeInvitation(ctx context.Context, token, usedBy string, usedAt time.Time) error

	// ListInvitations returns every invitation, newest first. Rows are kept
	// forever as an audit trail.
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)
}

type Profiles interface {
	// CreateCandidateProfile provisions the empty candidate shell.
	CreateCandidateProfile(ctx context.Context, id, accountID string) error

	// CreateCompanyProfile provisions the company shell. Name may be the
	// empty placeholder filled in later on the edit page.
	CreateCompanyProfile(ctx context.Context, id, accountID, name string) error

	// GetCandidateProfileByAccount returns the candidate shell for an account.
	GetCandidateProfileByAccount(ctx context.Context, accountID string) (domain.CandidateProfile, error)

	// GetCompanyProfileByAccount returns the company shell for an account.
	GetCompanyProfileByAccount(ctx context.Context, accountID string) (domain.CompanyProfile, error)
}
