package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNameRequired    = errors.New("name is required")
)

// OnboardingResult carries the refreshed account and the post-onboarding
// destination.
type OnboardingResult struct {
	Account  domain.Account
	Redirect string
}

// OnboardingService finalizes a candidate account after first login: it
// records the display name and flips the one-way onboarding flag.
type OnboardingService struct {
	Store store.Store
}

// Complete sets the account name and marks onboarding done. The flag only
// ever moves false to true; repeating the call is harmless.
func (s *OnboardingService) Complete(ctx context.Context, accountID, name string) (OnboardingResult, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return OnboardingResult{}, ErrNameRequired
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().UpdateAccountName(ctx, accountID, name); err != nil {
			return err
		}
		return tx.Accounts().CompleteOnboarding(ctx, accountID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OnboardingResult{}, ErrAccountNotFound
		}
		log.Error("onboarding update failed", slog.Any("error", err))
		return OnboardingResult{}, err
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OnboardingResult{}, ErrAccountNotFound
		}
		return OnboardingResult{}, err
	}
	account.PasswordHash = ""

	log.Info("onboarding completed", slog.String("account_id", accountID))

	return OnboardingResult{
		Account:  account,
		Redirect: "/dashboard/candidate/profile",
	}, nil
}
