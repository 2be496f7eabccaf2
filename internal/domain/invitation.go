package domain

import "time"

// Invitation is a single-use, time-boxed permission for one email address to
// register as COMPANY. The opaque token doubles as the lookup key and is the
// value embedded in the shareable signup link. Invitations are never deleted,
// only marked used, so the table is an audit trail.
type Invitation struct {
	ID        string
	Token     string
	Email     string
	Used      bool
	UsedAt    *time.Time
	UsedBy    *string
	ExpiresAt time.Time
	CreatedBy string
	CreatedAt time.Time
}

// Expired reports whether the invitation is no longer usable at t. The
// boundary instant itself counts as expired.
func (i Invitation) Expired(t time.Time) bool {
	return !t.Before(i.ExpiresAt)
}
