package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
	"github.com/joblinkhq/joblink/pkg/httpx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

type LoginHandler struct {
	CredentialService *service.CredentialService
	SessionService    *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Verifies an email/password pair and issues a signed session token. The token is
//	@Description	returned in the body and also set as an HttpOnly cookie for browser clients.
//	@Description	Unknown email and wrong password produce the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	boardsdk.LoginResponse	"token, expires_at, account"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	account, err := h.CredentialService.Verify(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			boardsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("credential verification failed", "err", err)
		boardsdk.ErrServerError.WriteError(w)
		return
	}

	token, err := h.SessionService.Issue(ctx, account)
	if err != nil {
		boardsdk.ErrServerError.WriteError(w)
		return
	}

	ttl := h.SessionService.TTL()
	setSessionCookie(w, r, token, ttl)

	httpx.WriteJSON(w, http.StatusOK, boardsdk.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl).Unix(),
		Account:   accountInfo(account),
	})
}

type LogoutHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Sign Out Endpoint
//	@Description	Clears the session cookie. Bearer clients simply discard their token.
//	@Tags			Auth
//	@Success		204	"no content"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, r)
	w.WriteHeader(http.StatusNoContent)
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
