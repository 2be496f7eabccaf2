package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/service"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
	"github.com/joblinkhq/joblink/pkg/httpx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
	SessionService      *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Creates an account. A valid invitation token forces the COMPANY role regardless of
//	@Description	the supplied role; without one, non-admin callers always get CANDIDATE. The matching
//	@Description	profile shell is provisioned and the invitation consumed in the same transaction.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.RegisterRequest	true	"Signup details"
//	@Success		201		{object}	boardsdk.RegisterResponse	"account, redirect"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description, fields"
//	@Failure		409		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.RegistrationService.Register(ctx, service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		Role:            req.Role,
		InvitationToken: req.InvitationToken,
		CallerIsAdmin:   h.callerIsAdmin(r),
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			fields := make([]boardsdk.FieldError, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, boardsdk.FieldError{Field: f.Field, Message: f.Message})
			}
			boardsdk.NewValidationError(fields).WriteError(w)
		case errors.Is(err, service.ErrEmailInUse):
			boardsdk.ErrEmailInUse.WriteError(w)
		case errors.Is(err, service.ErrInvalidInvitation):
			boardsdk.ErrInvalidInvitation.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			boardsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.RegisterResponse{
		Account:  accountInfo(result.Account),
		Redirect: result.Redirect,
	})
}

// callerIsAdmin soft-verifies an optional session. Registration stays open
// to anonymous callers; a valid ADMIN session just unlocks role selection.
func (h *RegisterHandler) callerIsAdmin(r *http.Request) bool {
	raw := httpx.SessionTokenFromRequest(r)
	if raw == "" {
		return false
	}
	claims, err := h.SessionService.VerifySession(r.Context(), raw)
	if err != nil {
		return false
	}
	return claims.Role == string(domain.RoleAdmin)
}
