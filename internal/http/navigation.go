package http

import (
	"net/http"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/pkg/boardsdk"
	"github.com/joblinkhq/joblink/pkg/httpx"
)

type NavigationHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Navigation Endpoint
//	@Description	Returns the ordered dashboard navigation for the caller's role, computed from the
//	@Description	same role enum the authorization gate uses.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	boardsdk.NavigationResponse	"role, items"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/navigation [get].
func (h *NavigationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, ok := httpx.RoleFromContext(r.Context())
	if !ok {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	role, ok := domain.ParseRole(raw)
	if !ok {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	items := domain.NavigationFor(role)
	out := boardsdk.NavigationResponse{
		Role:  string(role),
		Items: make([]boardsdk.NavItem, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, boardsdk.NavItem{Label: item.Label, Path: item.Path})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
