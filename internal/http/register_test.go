package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("anonymous signup becomes candidate", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", boardsdk.RegisterRequest{
			Email:    "candidate@example.com",
			Password: "long-enough-password",
			Name:     "New Candidate",
			Role:     "ADMIN", // must be ignored
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		resp := decodeBody[boardsdk.RegisterResponse](t, rec)
		require.Equal(t, "CANDIDATE", resp.Account.Role)
		require.Equal(t, "/onboarding", resp.Redirect)

		// The account can immediately sign in
		env.login(t, "candidate@example.com", "long-enough-password")
	})

	t.Run("validation failures list the offending fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", boardsdk.RegisterRequest{
			Email:    "not-an-email",
			Password: "short",
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBody[boardsdk.ErrorResponse](t, rec)
		require.Equal(t, boardsdk.ErrorCodeValidationFailed, resp.Error)
		require.Len(t, resp.Fields, 2)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", boardsdk.RegisterRequest{
			Email:    "candidate@example.com",
			Password: "long-enough-password",
		}, "")
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, boardsdk.ErrorCodeEmailInUse, decodeBody[boardsdk.ErrorResponse](t, rec).Error)
	})

	t.Run("admin session unlocks role selection", func(t *testing.T) {
		env.createAccount(t, "admin@example.com", "admin-password", domain.RoleAdmin, true)
		adminToken := env.login(t, "admin@example.com", "admin-password")

		rec := env.do(t, http.MethodPost, "/api/register", boardsdk.RegisterRequest{
			Email:    "handpicked@example.com",
			Password: "long-enough-password",
			Role:     "COMPANY",
		}, adminToken)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "COMPANY", decodeBody[boardsdk.RegisterResponse](t, rec).Account.Role)
	})
}

func TestInvitationEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.createAccount(t, "admin@example.com", "admin-password", domain.RoleAdmin, true)
	env.createAccount(t, "candidate@example.com", "user-password", domain.RoleCandidate, true)
	adminToken := env.login(t, "admin@example.com", "admin-password")
	candidateToken := env.login(t, "candidate@example.com", "user-password")

	t.Run("admin surface is closed to anonymous and non-admin callers", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/admin/invitation", boardsdk.InvitationRequest{Email: "x@example.com"}, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = env.do(t, http.MethodPost, "/api/admin/invitation", boardsdk.InvitationRequest{Email: "x@example.com"}, candidateToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	var minted boardsdk.InvitationResponse

	t.Run("mint returns the invitation and a shareable link", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/admin/invitation", boardsdk.InvitationRequest{
			Email: "company@x.com",
		}, adminToken)
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		minted = decodeBody[boardsdk.InvitationResponse](t, rec)
		require.NotEmpty(t, minted.Invitation.Token)
		require.Equal(t, "company@x.com", minted.Invitation.Email)
		require.False(t, minted.Invitation.Used)
		require.Equal(t, "https://joblink.test/company/signup?token="+minted.Invitation.Token, minted.URL)
	})

	t.Run("mint requires an email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/admin/invitation", boardsdk.InvitationRequest{}, adminToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate is public and reports the invited email without consuming", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			rec := env.do(t, http.MethodPost, "/api/admin/validate", boardsdk.ValidateRequest{
				Token: minted.Invitation.Token,
			}, "")
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decodeBody[boardsdk.ValidateResponse](t, rec)
			require.True(t, resp.Valid)
			require.Equal(t, "company@x.com", resp.Email)
		}
	})

	t.Run("validate distinguishes unknown from spent tokens", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/admin/validate", boardsdk.ValidateRequest{
			Token: "no-such-token",
		}, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invitation signup is forced to company", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", boardsdk.RegisterRequest{
			Email:           "company@x.com",
			Password:        "long-enough-password",
			Role:            "CANDIDATE", // overridden by the invitation
			InvitationToken: minted.Invitation.Token,
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		resp := decodeBody[boardsdk.RegisterResponse](t, rec)
		require.Equal(t, "COMPANY", resp.Account.Role)
		require.Equal(t, "/dashboard/company/profile/edit", resp.Redirect)
	})

	t.Run("spent invitation is rejected for signup and validation", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", boardsdk.RegisterRequest{
			Email:           "second@x.com",
			Password:        "long-enough-password",
			InvitationToken: minted.Invitation.Token,
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, boardsdk.ErrorCodeInvalidInvitation, decodeBody[boardsdk.ErrorResponse](t, rec).Error)

		rec = env.do(t, http.MethodPost, "/api/admin/validate", boardsdk.ValidateRequest{
			Token: minted.Invitation.Token,
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list shows the ledger with usage state", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/admin/invitation", nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[boardsdk.InvitationListResponse](t, rec)
		require.Len(t, resp.Invitations, 1)
		require.True(t, resp.Invitations[0].Used)
		require.NotEmpty(t, resp.Invitations[0].UsedBy)
		require.NotEmpty(t, resp.Invitations[0].UsedAt)
	})
}

func TestOnboardingEndpoint(t *testing.T) {
	env := newTestEnv(t)
	account := env.createAccount(t, "newbie@example.com", "user-password", domain.RoleCandidate, false)
	token := env.login(t, "newbie@example.com", "user-password")

	t.Run("requires a session", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/onboarding", boardsdk.OnboardingRequest{Name: "Ada"}, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/onboarding", boardsdk.OnboardingRequest{Name: "   "}, token)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("completes onboarding and refreshes the cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/onboarding", boardsdk.OnboardingRequest{Name: "Ada Lovelace"}, token)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		resp := decodeBody[boardsdk.OnboardingResponse](t, rec)
		require.Equal(t, "Ada Lovelace", resp.Account.Name)
		require.True(t, resp.Account.OnboardingCompleted)
		require.Equal(t, "/dashboard/candidate/profile", resp.Redirect)

		require.NotNil(t, sessionCookie(rec))

		stored, err := env.store.Accounts().GetAccountByID(context.Background(), account.ID)
		require.NoError(t, err)
		require.True(t, stored.OnboardingCompleted)
	})
}

func TestNavigationEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.createAccount(t, "admin@example.com", "admin-password", domain.RoleAdmin, true)
	token := env.login(t, "admin@example.com", "admin-password")

	t.Run("requires a session", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/navigation", nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the role's entries", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/navigation", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[boardsdk.NavigationResponse](t, rec)
		require.Equal(t, "ADMIN", resp.Role)
		require.Len(t, resp.Items, 2)
		require.Equal(t, "/dashboard/admin", resp.Items[0].Path)
	})
}
