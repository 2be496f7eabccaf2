package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/internal/store/drivers/sqlite"
	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/idx"
	"github.com/joblinkhq/joblink/pkg/jwtx"
)

const testIssuer = "joblink-test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func newSessionService(t *testing.T, st store.Store) *service.SessionService {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	return &service.SessionService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(keys, testIssuer),
		Store:    st,
		Issuer:   testIssuer,
	}
}

func createAccount(t *testing.T, st store.Store, email, password string, role domain.Role, onboarded bool) domain.Account {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	account := domain.Account{
		ID:                  idx.New().String(),
		Email:               email,
		PasswordHash:        hash,
		Name:                "Test Account",
		Role:                role,
		OnboardingCompleted: onboarded,
	}
	require.NoError(t, st.Accounts().CreateAccount(context.Background(), account))
	return account
}

func createInvitation(t *testing.T, st store.Store, email, createdBy string, expiresAt time.Time) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Token:     cryptox.MustGenerateToken(cryptox.TokenSize256),
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}
