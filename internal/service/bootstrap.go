package service

import (
	"context"
	"log/slog"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/idx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// EnsureAdmin seeds the first ADMIN account when the accounts table is empty
// and credentials were provided via configuration. It is a no-op on every
// later startup, so restarts never re-create or reset the admin.
func EnsureAdmin(ctx context.Context, st store.Store, email, password string) error {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return nil
	}

	empty, err := st.Accounts().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	account := domain.Account{
		ID:                  idx.New().String(),
		Email:               email,
		PasswordHash:        hash,
		Name:                "Administrator",
		Role:                domain.RoleAdmin,
		OnboardingCompleted: true,
	}
	if err := st.Accounts().CreateAccount(ctx, account); err != nil {
		return err
	}

	log.Info("bootstrapped initial admin account",
		slog.String("account_id", account.ID),
		slog.String("email", email),
	)
	return nil
}
