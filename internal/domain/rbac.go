package domain

const (
	RoleOwner       = "OWNER"
	RoleAccountant  = "ACCOUNTANT"
	RoleSiteManager = "SITE_MANAGER"
	RoleViewer      = "VIEWER"
)

// Roles lists every assignable role, most privileged first.
var Roles = []string{RoleOwner, RoleAccountant, RoleSiteManager, RoleViewer}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type EnforceRequest struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}
