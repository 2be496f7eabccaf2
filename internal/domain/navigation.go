package domain

// NavItem is one entry in a role's dashboard navigation.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavigationFor returns the ordered navigation entries for a role. It is a
// pure function of the Role enum so the authorization gate and the UI can
// never disagree about which subtree a role owns.
func NavigationFor(role Role) []NavItem {
	switch role {
	case RoleCandidate:
		return []NavItem{
			{Label: "Profile", Path: "/dashboard/candidate/profile"},
			{Label: "Applications", Path: "/dashboard/candidate/applications"},
			{Label: "Settings", Path: "/dashboard/candidate/settings"},
		}
	case RoleCompany:
		return []NavItem{
			{Label: "Profile", Path: "/dashboard/company/profile"},
			{Label: "Job Offers", Path: "/dashboard/company/job-offers"},
			{Label: "Settings", Path: "/dashboard/company/settings"},
		}
	case RoleAdmin:
		return []NavItem{
			{Label: "Overview", Path: "/dashboard/admin"},
			{Label: "Invitations", Path: "/dashboard/admin/invitations"},
		}
	default:
		return nil
	}
}
