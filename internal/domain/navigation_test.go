package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/internal/domain"
)

func TestNavigationFor(t *testing.T) {
	t.Run("every role gets entries under its own subtree", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleCandidate, domain.RoleCompany, domain.RoleAdmin} {
			items := domain.NavigationFor(role)
			require.NotEmpty(t, items)
			for _, item := range items {
				require.True(t, strings.HasPrefix(item.Path, "/dashboard/"+role.DashboardSlug()),
					"%s item %q escapes the role subtree", role, item.Path)
				require.NotEmpty(t, item.Label)
			}
		}
	})

	t.Run("candidate order", func(t *testing.T) {
		items := domain.NavigationFor(domain.RoleCandidate)
		require.Len(t, items, 3)
		require.Equal(t, "Profile", items[0].Label)
		require.Equal(t, "/dashboard/candidate/applications", items[1].Path)
	})

	t.Run("admin has invitation management", func(t *testing.T) {
		items := domain.NavigationFor(domain.RoleAdmin)
		require.Len(t, items, 2)
		require.Equal(t, "/dashboard/admin/invitations", items[1].Path)
	})

	t.Run("unknown role yields nothing", func(t *testing.T) {
		require.Nil(t, domain.NavigationFor(domain.Role("")))
		require.Nil(t, domain.NavigationFor(domain.Role("GUEST")))
	})
}
