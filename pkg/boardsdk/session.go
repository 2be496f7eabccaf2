package boardsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated handle on the API. It carries the signed
// session token and re-signs itself transparently when the server hands
// back an updated token.
type Session struct {
	client *Client
	token  string

	// Account is the account snapshot from login time. The server refreshes
	// role and onboarding state on every request, so treat this as a hint.
	Account AccountInfo
}

// Token exposes the raw session token, e.g. for persisting across runs.
func (s *Session) Token() string { return s.token }

// Current fetches the refreshed claims for this session. Role and
// onboarding state come from the account record, not the signed payload.
func (s *Session) Current(ctx context.Context) (*SessionResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/auth/session", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial claim override and swaps in the re-signed token.
func (s *Session) Update(ctx context.Context, req SessionUpdateRequest) (*SessionUpdateResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/session", req, s.token)
	if err != nil {
		return nil, err
	}

	var out SessionUpdateResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	s.token = out.Token
	return &out, nil
}

// Logout invalidates the session cookie server-side. The bearer token keeps
// verifying until expiry; callers should discard it.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusNoContent)
}

// CreateInvitation mints a single-use COMPANY signup invitation. Admin only.
func (s *Session) CreateInvitation(ctx context.Context, email string) (*InvitationResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/admin/invitation", InvitationRequest{Email: email}, s.token)
	if err != nil {
		return nil, err
	}

	var out InvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns every invitation, newest first. Admin only.
func (s *Session) ListInvitations(ctx context.Context) (*InvitationListResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/admin/invitation", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out InvitationListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteOnboarding records the display name and flips the one-way
// onboarding flag for the current account.
func (s *Session) CompleteOnboarding(ctx context.Context, name string) (*OnboardingResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPatch, "/api/onboarding", OnboardingRequest{Name: name}, s.token)
	if err != nil {
		return nil, err
	}

	var out OnboardingResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Navigation returns the ordered navigation entries for the caller's role.
func (s *Session) Navigation(ctx context.Context) (*NavigationResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/navigation", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out NavigationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
