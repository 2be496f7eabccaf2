package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/internal/store"
)

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.RegistrationService{Store: st}

	t.Run("malformed email and short password reported per field", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterInput{
			Email:    "not-an-email",
			Password: "short",
		})

		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 2)
		require.Equal(t, "email", verr.Fields[0].Field)
		require.Equal(t, "password", verr.Fields[1].Field)
	})

	t.Run("valid input passes validation", func(t *testing.T) {
		result, err := svc.Register(ctx, service.RegisterInput{
			Email:    "valid@example.com",
			Password: "long-enough-password",
			Name:     "Valid User",
		})
		require.NoError(t, err)
		require.Equal(t, "valid@example.com", result.Account.Email)
	})
}

func TestRegisterRoleForcing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.RegistrationService{Store: st}

	admin := createAccount(t, st, "admin@example.com", "admin-password", domain.RoleAdmin, true)

	t.Run("no invitation forces candidate", func(t *testing.T) {
		result, err := svc.Register(ctx, service.RegisterInput{
			Email:    "wannabe-admin@example.com",
			Password: "long-enough-password",
			Role:     "ADMIN",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleCandidate, result.Account.Role)
		require.Equal(t, "/onboarding", result.Redirect)

		// Candidate profile shell was provisioned
		_, err = st.Profiles().GetCandidateProfileByAccount(ctx, result.Account.ID)
		require.NoError(t, err)
	})

	t.Run("invitation forces company regardless of requested role", func(t *testing.T) {
		for i, requested := range []string{"CANDIDATE", "ADMIN"} {
			inv := createInvitation(t, st, "company@x.com", admin.ID, time.Now().UTC().Add(24*time.Hour))

			result, err := svc.Register(ctx, service.RegisterInput{
				Email:           fmt.Sprintf("company%d@x.com", i),
				Password:        "long-enough-password",
				Role:            requested,
				InvitationToken: inv.Token,
			})
			require.NoError(t, err)
			require.Equal(t, domain.RoleCompany, result.Account.Role)
			require.Equal(t, "/dashboard/company/profile/edit", result.Redirect)

			// Company profile shell with empty name placeholder
			profile, err := st.Profiles().GetCompanyProfileByAccount(ctx, result.Account.ID)
			require.NoError(t, err)
			require.Empty(t, profile.Name)

			// The invitation was consumed by the new account
			got, err := st.Invitations().GetInvitationByToken(ctx, inv.Token)
			require.NoError(t, err)
			require.True(t, got.Used)
			require.NotNil(t, got.UsedBy)
			require.Equal(t, result.Account.ID, *got.UsedBy)
		}
	})

	t.Run("admin caller may pick a role without invitation", func(t *testing.T) {
		result, err := svc.Register(ctx, service.RegisterInput{
			Email:         "handpicked@x.com",
			Password:      "long-enough-password",
			Role:          "COMPANY",
			CallerIsAdmin: true,
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleCompany, result.Account.Role)
	})

	t.Run("legacy role spellings normalize", func(t *testing.T) {
		result, err := svc.Register(ctx, service.RegisterInput{
			Email:         "legacy@x.com",
			Password:      "long-enough-password",
			Role:          "entreprise",
			CallerIsAdmin: true,
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleCompany, result.Account.Role)
	})

	t.Run("password hash never leaves the service", func(t *testing.T) {
		result, err := svc.Register(ctx, service.RegisterInput{
			Email:    "nohash@x.com",
			Password: "long-enough-password",
		})
		require.NoError(t, err)
		require.Empty(t, result.Account.PasswordHash)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.RegistrationService{Store: st}

	createAccount(t, st, "existing@x.com", "some-password", domain.RoleCandidate, false)

	_, err := svc.Register(ctx, service.RegisterInput{
		Email:    "existing@x.com",
		Password: "long-enough-password",
	})
	require.ErrorIs(t, err, service.ErrEmailInUse)
}

func TestRegisterInvalidInvitationAllOrNothing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.RegistrationService{Store: st}

	admin := createAccount(t, st, "admin@example.com", "admin-password", domain.RoleAdmin, true)

	tests := []struct {
		name  string
		token string
	}{
		{"unknown token", "no-such-token"},
		{"expired token", createInvitation(t, st, "late@x.com", admin.ID, time.Now().UTC().Add(-time.Minute)).Token},
	}

	usedInv := createInvitation(t, st, "used@x.com", admin.ID, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, st.Invitations().ConsumeInvitation(ctx, usedInv.Token, admin.ID, time.Now().UTC()))
	tests = append(tests, struct {
		name  string
		token string
	}{"already used token", usedInv.Token})

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := fmt.Sprintf("rejected%d@x.com", i)
			_, err := svc.Register(ctx, service.RegisterInput{
				Email:           email,
				Password:        "long-enough-password",
				InvitationToken: tt.token,
			})
			require.ErrorIs(t, err, service.ErrInvalidInvitation)

			// No account row came into existence
			_, err = st.Accounts().GetAccountByEmail(ctx, email)
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestRegisterConcurrentInvitationConsumption(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.RegistrationService{Store: st}

	admin := createAccount(t, st, "admin@example.com", "admin-password", domain.RoleAdmin, true)
	inv := createInvitation(t, st, "contested@x.com", admin.ID, time.Now().UTC().Add(24*time.Hour))

	const attempts = 4
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		go func(n int) {
			_, err := svc.Register(ctx, service.RegisterInput{
				Email:           fmt.Sprintf("contender%d@x.com", n),
				Password:        "long-enough-password",
				InvitationToken: inv.Token,
			})
			errs <- err
		}(i)
	}

	var succeeded int
	for i := 0; i < attempts; i++ {
		err := <-errs
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, errors.Is(err, service.ErrInvalidInvitation),
			"losers must observe an invalid invitation, got %v", err)
	}
	require.Equal(t, 1, succeeded, "exactly one registration may win the token")

	// Only the winner's account exists
	var accounts int
	for i := 0; i < attempts; i++ {
		_, err := st.Accounts().GetAccountByEmail(ctx, fmt.Sprintf("contender%d@x.com", i))
		if err == nil {
			accounts++
		}
	}
	require.Equal(t, 1, accounts)
}
