package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
	"github.com/joblinkhq/joblink/pkg/httpx"
	"github.com/joblinkhq/joblink/pkg/jwtx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleGet godoc
//
//	@Summary		Current Session Endpoint
//	@Description	Returns the claims for the current session. Role, name and onboarding state are
//	@Description	re-read from the account record on every call, never served from the signed payload.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	boardsdk.SessionResponse	"account_id, role, onboarding_completed"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/auth/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(claims))
}

// HandlePost godoc
//
//	@Summary		Session Update Endpoint
//	@Description	Applies a partial claim override (role or onboarding flag) and re-signs the token.
//	@Description	The original issue and expiry times are preserved, so an update never extends the
//	@Description	session's lifetime. The refreshed token replaces the session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.SessionUpdateRequest	true	"Partial claims"
//	@Success		200		{object}	boardsdk.SessionUpdateResponse	"token, session"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/auth/session [post].
func (h *SessionHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.SessionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	upd := service.SessionUpdate{OnboardingCompleted: req.OnboardingCompleted}
	if req.Role != nil {
		role, ok := domain.ParseRole(*req.Role)
		if !ok {
			boardsdk.NewValidationError([]boardsdk.FieldError{
				{Field: "role", Message: "Unknown role"},
			}).WriteError(w)
			return
		}
		upd.Role = &role
	}

	raw := httpx.SessionTokenFromRequest(r)
	newToken, err := h.SessionService.Update(ctx, raw, upd)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			boardsdk.ErrInvalidToken.WriteError(w)
			return
		}
		log.Error("session update failed", "err", err)
		boardsdk.ErrServerError.WriteError(w)
		return
	}

	claims, err := h.SessionService.VerifySession(ctx, newToken)
	if err != nil {
		boardsdk.ErrServerError.WriteError(w)
		return
	}

	// Keep the cookie in step with the re-signed token for the time the
	// original session has left.
	if exp := claims.ExpiresAt; exp != nil {
		setSessionCookie(w, r, newToken, time.Until(exp.Time))
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.SessionUpdateResponse{
		Token:   newToken,
		Session: sessionResponse(claims),
	})
}

func sessionResponse(claims jwtx.Claims) boardsdk.SessionResponse {
	out := boardsdk.SessionResponse{
		AccountID:           claims.Subject,
		Email:               claims.Email,
		Name:                claims.Name,
		Role:                claims.Role,
		OnboardingCompleted: claims.OnboardingCompleted,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out
}
