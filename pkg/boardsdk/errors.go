package boardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared by the server and the SDK.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeInvalidInvitation  = "invalid_invitation"
	ErrorCodeEmailInUse         = "email_in_use"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeInsufficientRole   = "insufficient_role"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the typed form of an ErrorResponse. It is used both by the
// server to write responses and by the SDK client to represent failures.
type APIError struct {
	StatusCode  int          `json:"-"`
	Code        string       `json:"error"`
	Description string       `json:"error_description"`
	Fields      []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Fields:           e.Fields,
	})
}

var (
	// ErrInvalidRequest covers malformed bodies and missing parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is the single sign-in failure. It deliberately
	// never says whether the email or the password was wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrInvalidToken is returned when the session token is missing,
	// malformed, expired or belongs to a deleted account.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid or expired",
	}

	// ErrInvalidInvitation covers unknown, expired and already-used
	// invitation tokens at registration time.
	ErrInvalidInvitation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidInvitation,
		Description: "invalid or expired invitation",
	}

	// ErrEmailInUse is the duplicate-registration conflict.
	ErrEmailInUse = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailInUse,
		Description: "an account with this email already exists",
	}

	// ErrInsufficientRole is returned on admin-only surfaces.
	ErrInsufficientRole = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInsufficientRole,
		Description: "this operation requires a different role",
	}

	// ErrServerError hides every internal failure behind one message.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error, try again",
	}
)

// NewAPIError builds a custom error while keeping the shared envelope.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

// NewValidationError wraps per-field failures into a 400 response.
func NewValidationError(fields []FieldError) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidationFailed,
		Description: "one or more fields are invalid",
		Fields:      fields,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for success status codes.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Fields:      errResp.Fields,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
