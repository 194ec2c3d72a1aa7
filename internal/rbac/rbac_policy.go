package rbac

import "go-sitebooks/internal/domain"

const (
	ResourceProject        = "project"
	ResourceWorker         = "worker"
	ResourceAttendance     = "attendance"
	ResourceWorkerTransfer = "worker_transfer"
	ResourceSupplier       = "supplier"
	ResourcePurchase       = "purchase"
	ResourceFundTransfer   = "fund_transfer"
	ResourceDailySummary   = "daily_summary"
	ResourceStatement      = "statement"
	ResourceUser           = "user"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExport = "export"
	ActionManage = "manage"
)

type Permission struct {
	Resource string
	Action   string
}

var ledgerResources = []string{
	ResourceProject,
	ResourceWorker,
	ResourceAttendance,
	ResourceWorkerTransfer,
	ResourceSupplier,
	ResourcePurchase,
	ResourceFundTransfer,
}

// DefaultPolicy is granted to every company. Extra grants come from the
// role_permissions table.
func DefaultPolicy() map[string][]Permission {
	accountant := []Permission{
		{ResourceDailySummary, ActionRead},
		{ResourceDailySummary, ActionManage},
		{ResourceStatement, ActionRead},
		{ResourceStatement, ActionExport},
		{ResourceUser, ActionRead},
	}
	for _, res := range ledgerResources {
		for _, act := range []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			accountant = append(accountant, Permission{res, act})
		}
	}

	viewer := []Permission{
		{ResourceDailySummary, ActionRead},
		{ResourceStatement, ActionRead},
	}
	for _, res := range ledgerResources {
		viewer = append(viewer, Permission{res, ActionRead})
	}

	siteManager := append([]Permission{
		{ResourceWorker, ActionCreate},
		{ResourceWorker, ActionUpdate},
		{ResourceAttendance, ActionCreate},
		{ResourceAttendance, ActionUpdate},
		{ResourceWorkerTransfer, ActionCreate},
		{ResourcePurchase, ActionCreate},
		{ResourceStatement, ActionExport},
	}, viewer...)

	return map[string][]Permission{
		domain.RoleOwner:       {{"*", "*"}},
		domain.RoleAccountant:  accountant,
		domain.RoleSiteManager: siteManager,
		domain.RoleViewer:      viewer,
	}
}
