package service

import (
	"context"
	"errors"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// ErrInvalidCredentials covers both unknown email and wrong password. The
// two cases must stay indistinguishable to callers so the login surface
// can't be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialService verifies email/password pairs against stored hashes.
type CredentialService struct {
	Store store.Store
}

// Verify looks up the account by exact email match and compares the
// password against its bcrypt hash. Pure read, no side effects.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return domain.Account{}, ErrInvalidCredentials
	}

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same failure as a bad password, on purpose
			return domain.Account{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch account for login", "err", err)
		return domain.Account{}, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Warn("password mismatch on login", "account_id", account.ID)
		return domain.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
