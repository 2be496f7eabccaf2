package sqlite

import (
	"context"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
)

type profilesRepo struct {
	db querier
}

func (r *profilesRepo) CreateCandidateProfile(ctx context.Context, id, accountID string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO candidate_profiles (id, account_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, accountID, now, now,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *profilesRepo) CreateCompanyProfile(ctx context.Context, id, accountID, name string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO company_profiles (id, account_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, accountID, name, now, now,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *profilesRepo) GetCandidateProfileByAccount(ctx context.Context, accountID string) (domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, created_at, updated_at FROM candidate_profiles WHERE account_id = ?`,
		accountID,
	).Scan(&p.ID, &p.AccountID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.CandidateProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) GetCompanyProfileByAccount(ctx context.Context, accountID string) (domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, name, created_at, updated_at FROM company_profiles WHERE account_id = ?`,
		accountID,
	).Scan(&p.ID, &p.AccountID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.CompanyProfile{}, mapNotFound(err)
	}
	return p, nil
}
