package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
)

const invitationColumns = `id, token, email, used, used_at, used_by, expires_at, created_by, created_at`

type invitationsRepo struct {
	db querier
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO company_invitations (id, token, email, used, expires_at, created_by, created_at)
		 VALUES (?, ?, ?, 0, ?, ?, ?)`,
		inv.ID, inv.Token, inv.Email, inv.ExpiresAt, inv.CreatedBy, inv.CreatedAt,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM company_invitations WHERE token = ?`, token)
	return scanInvitation(row)
}

// ConsumeInvitation is the single-use guard. The WHERE clause only matches
// unused, unexpired rows, so when two registrations race on one token the
// second UPDATE affects zero rows and surfaces ErrNotFound.
func (r *invitationsRepo) ConsumeInvitation(ctx context.Context, token, usedBy string, usedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE company_invitations
		 SET used = 1, used_at = ?, used_by = ?
		 WHERE token = ? AND used = 0 AND expires_at > ?`,
		usedAt, usedBy, token, usedAt,
	)
	if err != nil {
		return err
	}
	return requireHit(res)
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM company_invitations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// requireHit converts a zero-row UPDATE into ErrNotFound.
func requireHit(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
