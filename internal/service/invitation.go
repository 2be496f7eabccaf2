package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/idx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// InvitationValidity is the fixed window between creation and expiry.
const InvitationValidity = 7 * 24 * time.Hour

var (
	ErrInvitationNotFound       = errors.New("invitation not found")
	ErrInvitationExpired        = errors.New("invitation expired")
	ErrInvitationUsed           = errors.New("invitation already used")
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")
)

// InvitationService manages the single-use invitation tokens that gate
// COMPANY registration. Rows are marked used, never deleted, so the ledger
// doubles as an audit trail. Multiple outstanding invitations for the same
// email are allowed.
type InvitationService struct {
	Store store.Store

	// BaseURL is the public app origin used to build shareable links.
	BaseURL string
}

// Create mints a new invitation for the email, issued by the given admin
// account, expiring 7 days from now.
func (s *InvitationService) Create(ctx context.Context, email, issuerID string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if email == "" || issuerID == "" {
		return domain.Invitation{}, ErrInvalidInvitationRequest
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Token:     token,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().UTC().Add(InvitationValidity),
		CreatedBy: issuerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Debug("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("created_by", issuerID),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return inv, nil
}

// Validate is the read-only check used by the signup page and as the first
// step of registration. It never marks the token used; consumption is a
// separate transactional step.
func (s *InvitationService) Validate(ctx context.Context, token string) (domain.Invitation, error) {
	return validateInvitation(ctx, s.Store, token)
}

// ShareableURL renders the deep link an invited company receives.
func (s *InvitationService) ShareableURL(inv domain.Invitation) string {
	return s.BaseURL + "/company/signup?token=" + inv.Token
}

// List returns every invitation, newest first, for the admin dashboard.
func (s *InvitationService) List(ctx context.Context) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitations(ctx)
}

// validateInvitation runs the validity policy against any store view, which
// lets registration re-run it inside its transaction.
func validateInvitation(ctx context.Context, st store.Store, token string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.Invitation{}, ErrInvitationNotFound
	}

	inv, err := st.Invitations().GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	if inv.Expired(time.Now().UTC()) {
		return domain.Invitation{}, ErrInvitationExpired
	}
	if inv.Used {
		return domain.Invitation{}, ErrInvitationUsed
	}

	return inv, nil
}
