package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
	"github.com/joblinkhq/joblink/pkg/httpx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

type OnboardingHandler struct {
	OnboardingService *service.OnboardingService
	SessionService    *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Onboarding Completion Endpoint
//	@Description	Records the display name and flips the one-way onboarding flag for the current
//	@Description	account. The session cookie is re-issued with refreshed claims so the very next
//	@Description	page load clears the onboarding gate.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.OnboardingRequest	true	"Profile details"
//	@Success		200		{object}	boardsdk.OnboardingResponse	"account, redirect"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description, fields"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/onboarding [patch].
func (h *OnboardingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID, ok := httpx.AccountIDFromContext(ctx)
	if !ok || accountID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req boardsdk.OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.OnboardingService.Complete(ctx, accountID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			boardsdk.NewValidationError([]boardsdk.FieldError{
				{Field: "name", Message: "Name is required"},
			}).WriteError(w)
		case errors.Is(err, service.ErrAccountNotFound):
			boardsdk.ErrInvalidToken.WriteError(w)
		default:
			log.Error("onboarding completion failed", "err", err)
			boardsdk.ErrServerError.WriteError(w)
		}
		return
	}

	// Re-sign the session in place; the store was already updated, this
	// just keeps the cookie's claim copy from lagging a request behind.
	if raw := httpx.SessionTokenFromRequest(r); raw != "" {
		done := true
		if newToken, err := h.SessionService.Update(ctx, raw, service.SessionUpdate{OnboardingCompleted: &done}); err == nil {
			setSessionCookie(w, r, newToken, h.SessionService.TTL())
		}
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.OnboardingResponse{
		Account:  accountInfo(result.Account),
		Redirect: result.Redirect,
	})
}
