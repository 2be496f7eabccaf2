package boardsdk

// AccountInfo is the public view of an account. The password hash never
// appears in any response.
type AccountInfo struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	Role                string `json:"role"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	CreatedAt           string `json:"created_at,omitempty"`
}

// RegisterRequest is the signup payload. Role is only honoured for admin
// callers; an invitation token forces COMPANY regardless.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name,omitempty"`
	Role            string `json:"role,omitempty"`
	InvitationToken string `json:"invitation_token,omitempty"`
}

// RegisterResponse carries the created account plus the page the client
// should navigate to next.
type RegisterResponse struct {
	Account  AccountInfo `json:"account"`
	Redirect string      `json:"redirect"`
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the signed session token. Browsers also receive it
// as an HttpOnly cookie; API clients send it back as a bearer token.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	Account   AccountInfo `json:"account"`
}

// SessionResponse is the refreshed claim set for the current session.
type SessionResponse struct {
	AccountID           string `json:"account_id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	Role                string `json:"role"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	ExpiresAt           int64  `json:"expires_at"`
}

// SessionUpdateRequest applies a partial claim override; nil fields are
// left untouched. The response carries a re-signed token with the original
// expiry preserved.
type SessionUpdateRequest struct {
	Role                *string `json:"role,omitempty"`
	OnboardingCompleted *bool   `json:"onboarding_completed,omitempty"`
}

// SessionUpdateResponse returns the re-signed token and resulting claims.
type SessionUpdateResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// InvitationRequest asks for a new single-use COMPANY signup invitation.
type InvitationRequest struct {
	Email string `json:"email"`
}

// InvitationInfo is one invitation ledger row, including its raw token so
// admins can re-share the link.
type InvitationInfo struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Email     string `json:"email"`
	Used      bool   `json:"used"`
	UsedAt    string `json:"used_at,omitempty"`
	UsedBy    string `json:"used_by,omitempty"`
	ExpiresAt string `json:"expires_at"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// InvitationResponse is a freshly minted invitation plus its shareable URL.
type InvitationResponse struct {
	Invitation InvitationInfo `json:"invitation"`
	URL        string         `json:"url"`
}

// InvitationListResponse lists all invitations, newest first.
type InvitationListResponse struct {
	Invitations []InvitationInfo `json:"invitations"`
}

// ValidateRequest checks an invitation token without consuming it.
type ValidateRequest struct {
	Token string `json:"token"`
}

// ValidateResponse reports the email an invitation grants COMPANY signup to.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

// OnboardingRequest finalizes a candidate account.
type OnboardingRequest struct {
	Name string `json:"name"`
}

// OnboardingResponse returns the updated account and next destination.
type OnboardingResponse struct {
	Account  AccountInfo `json:"account"`
	Redirect string      `json:"redirect"`
}

// NavItem is one navigation entry for the caller's role.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavigationResponse is the ordered navigation for the caller's role.
type NavigationResponse struct {
	Role  string    `json:"role"`
	Items []NavItem `json:"items"`
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error            string       `json:"error"`
	ErrorDescription string       `json:"error_description,omitempty"`
	Fields           []FieldError `json:"fields,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
