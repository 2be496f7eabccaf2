package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/internal/store/drivers/sqlite"
	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/idx"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newAccount(email string, role domain.Role) domain.Account {
	return domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "fake-hash",
		Name:         "Test User",
		Role:         role,
	}
}

func newInvitation(email, createdBy string, expiresAt time.Time) domain.Invitation {
	return domain.Invitation{
		ID:        idx.New().String(),
		Token:     cryptox.MustGenerateToken(cryptox.TokenSize256),
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAccountsCRUD(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	account := newAccount("user@example.com", domain.RoleCandidate)
	require.NoError(t, st.Accounts().CreateAccount(ctx, account))

	t.Run("lookup by id and email", func(t *testing.T) {
		byID, err := st.Accounts().GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, account.Email, byID.Email)
		require.Equal(t, domain.RoleCandidate, byID.Role)
		require.False(t, byID.OnboardingCompleted)
		require.False(t, byID.CreatedAt.IsZero())

		byEmail, err := st.Accounts().GetAccountByEmail(ctx, account.Email)
		require.NoError(t, err)
		require.Equal(t, account.ID, byEmail.ID)
	})

	t.Run("email lookup is exact match", func(t *testing.T) {
		_, err := st.Accounts().GetAccountByEmail(ctx, "USER@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := newAccount(account.Email, domain.RoleCompany)
		err := st.Accounts().CreateAccount(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update name and role", func(t *testing.T) {
		require.NoError(t, st.Accounts().UpdateAccountName(ctx, account.ID, "Renamed"))
		require.NoError(t, st.Accounts().UpdateAccountRole(ctx, account.ID, domain.RoleAdmin))

		got, err := st.Accounts().GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Name)
		require.Equal(t, domain.RoleAdmin, got.Role)
	})

	t.Run("complete onboarding is idempotent", func(t *testing.T) {
		require.NoError(t, st.Accounts().CompleteOnboarding(ctx, account.ID))
		require.NoError(t, st.Accounts().CompleteOnboarding(ctx, account.ID))

		got, err := st.Accounts().GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.True(t, got.OnboardingCompleted)
	})

	t.Run("updates on missing id report not found", func(t *testing.T) {
		missing := idx.New().String()
		require.ErrorIs(t, st.Accounts().UpdateAccountName(ctx, missing, "x"), store.ErrNotFound)
		require.ErrorIs(t, st.Accounts().CompleteOnboarding(ctx, missing), store.ErrNotFound)
	})
}

func TestAccountsIsEmpty(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	empty, err := st.Accounts().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, st.Accounts().CreateAccount(ctx, newAccount("a@example.com", domain.RoleAdmin)))

	empty, err = st.Accounts().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestInvitationConsume(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	admin := newAccount("admin@example.com", domain.RoleAdmin)
	require.NoError(t, st.Accounts().CreateAccount(ctx, admin))
	user := newAccount("winner@example.com", domain.RoleCompany)
	require.NoError(t, st.Accounts().CreateAccount(ctx, user))

	t.Run("consume marks used with attribution", func(t *testing.T) {
		inv := newInvitation("invited@example.com", admin.ID, time.Now().UTC().Add(time.Hour))
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		now := time.Now().UTC()
		require.NoError(t, st.Invitations().ConsumeInvitation(ctx, inv.Token, user.ID, now))

		got, err := st.Invitations().GetInvitationByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.True(t, got.Used)
		require.NotNil(t, got.UsedAt)
		require.NotNil(t, got.UsedBy)
		require.Equal(t, user.ID, *got.UsedBy)
	})

	t.Run("second consume misses", func(t *testing.T) {
		inv := newInvitation("twice@example.com", admin.ID, time.Now().UTC().Add(time.Hour))
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		require.NoError(t, st.Invitations().ConsumeInvitation(ctx, inv.Token, user.ID, time.Now().UTC()))
		err := st.Invitations().ConsumeInvitation(ctx, inv.Token, user.ID, time.Now().UTC())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expired invitation cannot be consumed", func(t *testing.T) {
		inv := newInvitation("late@example.com", admin.ID, time.Now().UTC().Add(-time.Minute))
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		err := st.Invitations().ConsumeInvitation(ctx, inv.Token, user.ID, time.Now().UTC())
		require.ErrorIs(t, err, store.ErrNotFound)

		// The row itself is still there for auditing
		got, err := st.Invitations().GetInvitationByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.False(t, got.Used)
	})

	t.Run("unknown token misses", func(t *testing.T) {
		err := st.Invitations().ConsumeInvitation(ctx, "no-such-token", user.ID, time.Now().UTC())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestInvitationList(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	admin := newAccount("admin@example.com", domain.RoleAdmin)
	require.NoError(t, st.Accounts().CreateAccount(ctx, admin))

	list, err := st.Invitations().ListInvitations(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	// Backdated timestamps inserted newest first, so the ordering has to
	// come from the stored created_at rather than insertion order.
	base := time.Now().UTC()
	var tokens []string
	for i := 0; i < 3; i++ {
		inv := newInvitation("invited@example.com", admin.ID, base.Add(time.Hour))
		inv.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))
		tokens = append(tokens, inv.Token)
	}

	list, err = st.Invitations().ListInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	require.Equal(t, tokens[0], list[0].Token)
	require.Equal(t, tokens[1], list[1].Token)
	require.Equal(t, tokens[2], list[2].Token)

	// The row carries the caller's timestamp, not the insert time.
	require.WithinDuration(t, base, list[0].CreatedAt, time.Second)
	require.WithinDuration(t, base.Add(-2*time.Minute), list[2].CreatedAt, time.Second)
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	account := newAccount("profiled@example.com", domain.RoleCandidate)
	require.NoError(t, st.Accounts().CreateAccount(ctx, account))

	t.Run("candidate shell", func(t *testing.T) {
		require.NoError(t, st.Profiles().CreateCandidateProfile(ctx, idx.New().String(), account.ID))

		profile, err := st.Profiles().GetCandidateProfileByAccount(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, account.ID, profile.AccountID)
	})

	t.Run("company shell with placeholder name", func(t *testing.T) {
		company := newAccount("corp@example.com", domain.RoleCompany)
		require.NoError(t, st.Accounts().CreateAccount(ctx, company))
		require.NoError(t, st.Profiles().CreateCompanyProfile(ctx, idx.New().String(), company.ID, ""))

		profile, err := st.Profiles().GetCompanyProfileByAccount(ctx, company.ID)
		require.NoError(t, err)
		require.Empty(t, profile.Name)
	})

	t.Run("missing profile reports not found", func(t *testing.T) {
		_, err := st.Profiles().GetCompanyProfileByAccount(ctx, account.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("profile requires an existing account", func(t *testing.T) {
		err := st.Profiles().CreateCandidateProfile(ctx, idx.New().String(), idx.New().String())
		require.Error(t, err)
	})
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, newAccount("ghost@example.com", domain.RoleCandidate)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Accounts().GetAccountByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommit(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		account := newAccount("kept@example.com", domain.RoleCandidate)
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}
		return tx.Profiles().CreateCandidateProfile(ctx, idx.New().String(), account.ID)
	})
	require.NoError(t, err)

	account, err := st.Accounts().GetAccountByEmail(ctx, "kept@example.com")
	require.NoError(t, err)
	_, err = st.Profiles().GetCandidateProfileByAccount(ctx, account.ID)
	require.NoError(t, err)
}
