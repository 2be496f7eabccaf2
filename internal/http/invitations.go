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

type InvitationMintHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Mint Endpoint
//	@Description	Mints a single-use invitation allowing one email to register as COMPANY within 7 days.
//	@Description	Returns the invitation plus a shareable signup URL embedding the token. Admin only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.InvitationRequest	true	"Invitation request"
//	@Success		201		{object}	boardsdk.InvitationResponse	"invitation, url"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/admin/invitation [post].
func (h *InvitationMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.InvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	issuerID, ok := httpx.AccountIDFromContext(ctx)
	if !ok || issuerID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	inv, err := h.InvitationService.Create(ctx, req.Email, issuerID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInvitationRequest) {
			boardsdk.NewValidationError([]boardsdk.FieldError{
				{Field: "email", Message: "Email is required"},
			}).WriteError(w)
			return
		}
		log.Error("failed to mint invitation", "err", err)
		boardsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.InvitationResponse{
		Invitation: invitationInfo(inv),
		URL:        h.InvitationService.ShareableURL(inv),
	})
}

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation List Endpoint
//	@Description	Returns every invitation ever minted, newest first, including raw tokens and
//	@Description	usage/expiry state. Rows are never deleted; the ledger doubles as an audit trail.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	boardsdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/admin/invitation [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invitations, err := h.InvitationService.List(ctx)
	if err != nil {
		log.Error("failed to list invitations", "err", err)
		boardsdk.ErrServerError.WriteError(w)
		return
	}

	out := boardsdk.InvitationListResponse{
		Invitations: make([]boardsdk.InvitationInfo, 0, len(invitations)),
	}
	for _, inv := range invitations {
		out.Invitations = append(out.Invitations, invitationInfo(inv))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}

type InvitationValidateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Validation Endpoint
//	@Description	Checks an invitation token without consuming it. Unknown tokens yield 404,
//	@Description	expired or already-used tokens 400, valid ones the email they were issued for.
//	@Description	Public: the signup page validates the token before any session exists.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.ValidateRequest	true	"Token to check"
//	@Success		200		{object}	boardsdk.ValidateResponse	"valid, email"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Router			/api/admin/validate [post].
func (h *InvitationValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	inv, err := h.InvitationService.Validate(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			boardsdk.NewAPIError(http.StatusNotFound, boardsdk.ErrorCodeNotFound, "invitation not found").WriteError(w)
		case errors.Is(err, service.ErrInvitationExpired):
			boardsdk.NewAPIError(http.StatusBadRequest, boardsdk.ErrorCodeInvalidInvitation, "invitation has expired").WriteError(w)
		case errors.Is(err, service.ErrInvitationUsed):
			boardsdk.NewAPIError(http.StatusBadRequest, boardsdk.ErrorCodeInvalidInvitation, "invitation already used").WriteError(w)
		default:
			log.Error("invitation validation failed", "err", err)
			boardsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.ValidateResponse{
		Valid: true,
		Email: inv.Email,
	})
}
