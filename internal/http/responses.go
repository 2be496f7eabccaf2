package http

import (
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
)

func accountInfo(a domain.Account) boardsdk.AccountInfo {
	out := boardsdk.AccountInfo{
		ID:                  a.ID,
		Email:               a.Email,
		Name:                a.Name,
		Role:                string(a.Role),
		OnboardingCompleted: a.OnboardingCompleted,
	}
	if !a.CreatedAt.IsZero() {
		out.CreatedAt = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func invitationInfo(inv domain.Invitation) boardsdk.InvitationInfo {
	out := boardsdk.InvitationInfo{
		ID:        inv.ID,
		Token:     inv.Token,
		Email:     inv.Email,
		Used:      inv.Used,
		ExpiresAt: inv.ExpiresAt.UTC().Format(time.RFC3339),
		CreatedBy: inv.CreatedBy,
		CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339),
	}
	if inv.UsedAt != nil {
		out.UsedAt = inv.UsedAt.UTC().Format(time.RFC3339)
	}
	if inv.UsedBy != nil {
		out.UsedBy = *inv.UsedBy
	}
	return out
}
