package sqlite

import (
	"context"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
)

const accountColumns = `id, email, password_hash, name, role, onboarding_completed, created_at, updated_at`

type accountsRepo struct {
	db querier
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, name, role, onboarding_completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.PasswordHash, a.Name, string(a.Role), a.OnboardingCompleted, now, now,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *accountsRepo) UpdateAccountName(ctx context.Context, accountID, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireHit(res)
}

func (r *accountsRepo) UpdateAccountRole(ctx context.Context, accountID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireHit(res)
}

func (r *accountsRepo) CompleteOnboarding(ctx context.Context, accountID string) error {
	// Monotonic flip: already-completed rows still match, so the operation
	// stays idempotent.
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET onboarding_completed = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireHit(res)
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM accounts`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
