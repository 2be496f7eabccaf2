package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/idx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidInvitation  = errors.New("invalid or expired invitation token")
	ErrRegistrationFailed = errors.New("registration failed")
)

// FieldError reports a validation failure on a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field failures so the caller can resubmit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// RegisterInput is the raw registration request. Role is the caller-supplied
// string and goes through ParseRole; it is only honoured for admin callers.
type RegisterInput struct {
	Email           string
	Password        string
	Name            string
	Role            string
	InvitationToken string

	// CallerIsAdmin is true when the request carries an authenticated
	// ADMIN session, which is the only way to self-select a role.
	CallerIsAdmin bool
}

// RegisterResult is the created account plus the page the client should
// land on next.
type RegisterResult struct {
	Account  domain.Account
	Redirect string
}

// RegistrationService creates accounts, provisions the role-specific profile
// shell and, for invitation signups, consumes the invitation in the same
// transaction. Either everything commits or nothing does.
type RegistrationService struct {
	Store store.Store
}

// Register runs the registration rules in order: invitation validation and
// role forcing, duplicate-email check, password hashing, then a single
// transaction for account + profile + invitation consumption.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	log := slogx.FromContext(ctx)

	if verr := validateRegisterInput(in); verr != nil {
		return RegisterResult{}, verr
	}

	// 1. Resolve the effective role. An invitation always wins and forces
	// COMPANY; without one, only admins may pick a role.
	role, _ := domain.ParseRole(in.Role)
	if !role.Valid() {
		role = domain.RoleCandidate
	}

	if in.InvitationToken != "" {
		if _, err := validateInvitation(ctx, s.Store, in.InvitationToken); err != nil {
			if isInvitationRejection(err) {
				return RegisterResult{}, ErrInvalidInvitation
			}
			return RegisterResult{}, err
		}
		role = domain.RoleCompany
	} else if !in.CallerIsAdmin {
		role = domain.RoleCandidate
	}

	// 2. Duplicate email pre-check. The unique constraint still backstops
	// races; this just gives a precise error on the common path.
	_, err := s.Store.Accounts().GetAccountByEmail(ctx, in.Email)
	if err == nil {
		return RegisterResult{}, ErrEmailInUse
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("email lookup failed during registration", slog.Any("error", err))
		return RegisterResult{}, ErrRegistrationFailed
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("password hashing failed", slog.Any("error", err))
		return RegisterResult{}, ErrRegistrationFailed
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
	}

	// 3. Account, profile shell and invitation consumption commit as one
	// unit. A consumption race lost inside the transaction rolls all of it
	// back, so no account ever exists with its invitation left unconsumed.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}

		switch role {
		case domain.RoleCompany:
			if err := tx.Profiles().CreateCompanyProfile(ctx, idx.New().String(), account.ID, ""); err != nil {
				return err
			}
		default:
			if err := tx.Profiles().CreateCandidateProfile(ctx, idx.New().String(), account.ID); err != nil {
				return err
			}
		}

		if in.InvitationToken != "" {
			if _, err := validateInvitation(ctx, tx, in.InvitationToken); err != nil {
				return err
			}
			if err := tx.Invitations().ConsumeInvitation(ctx, in.InvitationToken, account.ID, time.Now().UTC()); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					// Conditional update matched nothing: a concurrent
					// registration won the token.
					return ErrInvitationUsed
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return RegisterResult{}, ErrEmailInUse
		case isInvitationRejection(err):
			return RegisterResult{}, ErrInvalidInvitation
		default:
			log.Error("registration transaction failed", slog.Any("error", err))
			return RegisterResult{}, ErrRegistrationFailed
		}
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("role", role.String()),
		slog.Bool("via_invitation", in.InvitationToken != ""),
	)

	account.PasswordHash = "" // never hand the hash back out

	return RegisterResult{
		Account:  account,
		Redirect: postRegistrationRedirect(role),
	}, nil
}

func postRegistrationRedirect(role domain.Role) string {
	if role == domain.RoleCompany {
		return "/dashboard/company/profile/edit"
	}
	return "/onboarding"
}

func isInvitationRejection(err error) bool {
	return errors.Is(err, ErrInvitationNotFound) ||
		errors.Is(err, ErrInvitationExpired) ||
		errors.Is(err, ErrInvitationUsed)
}

func validateRegisterInput(in RegisterInput) error {
	var fields []FieldError

	if _, err := mail.ParseAddress(in.Email); err != nil || in.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "Invalid email address"})
	}
	if len(in.Password) < MinPasswordLength {
		fields = append(fields, FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
