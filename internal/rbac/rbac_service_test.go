package rbac

import (
	"context"
	"errors"
	"testing"

	"go-sitebooks/internal/domain"
	"go-sitebooks/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	userRoles []UserRoleRow
	extra     []RolePermissionRow
	err       error
}

func (f *fakeRepo) GetUserRoles(context.Context, string) ([]UserRoleRow, error) {
	return f.userRoles, f.err
}

func (f *fakeRepo) GetRolePermissions(context.Context, string) ([]RolePermissionRow, error) {
	return f.extra, nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	e, err := infra.NewEnforcer("")
	assert.NoError(t, err)
	return e
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &fakeRepo{
		userRoles: []UserRoleRow{
			{UserID: "owner-1", Role: domain.RoleOwner},
			{UserID: "viewer-1", Role: domain.RoleViewer},
			{UserID: "site-1", Role: domain.RoleSiteManager},
		},
		extra: []RolePermissionRow{
			{Role: domain.RoleViewer, Resource: ResourceStatement, Action: ActionExport},
		},
	}
	svc := NewService(repo, newTestEnforcer(t))

	tests := []struct {
		name     string
		user     string
		resource string
		action   string
		want     bool
	}{
		{"owner wildcard", "owner-1", ResourcePurchase, ActionDelete, true},
		{"viewer reads attendance", "viewer-1", ResourceAttendance, ActionRead, true},
		{"viewer cannot create", "viewer-1", ResourceAttendance, ActionCreate, false},
		{"viewer extra grant", "viewer-1", ResourceStatement, ActionExport, true},
		{"site manager records attendance", "site-1", ResourceAttendance, ActionCreate, true},
		{"site manager cannot delete purchase", "site-1", ResourcePurchase, ActionDelete, false},
		{"unknown user", "ghost", ResourceProject, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				UserID:    tt.user,
				CompanyID: "company-1",
				Resource:  tt.resource,
				Action:    tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_ReloadsPolicyPerCheck(t *testing.T) {
	repo := &fakeRepo{userRoles: []UserRoleRow{{UserID: "owner-1", Role: domain.RoleOwner}}}
	svc := NewService(repo, newTestEnforcer(t))

	allowed, err := svc.Enforce(domain.EnforceRequest{UserID: "owner-1", CompanyID: "company-2", Resource: ResourceProject, Action: ActionRead})
	assert.NoError(t, err)
	assert.True(t, allowed)

	repo.userRoles = nil
	allowed, err = svc.Enforce(domain.EnforceRequest{UserID: "owner-1", CompanyID: "company-2", Resource: ResourceProject, Action: ActionRead})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_RepoError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")}, newTestEnforcer(t))
	_, err := svc.Enforce(domain.EnforceRequest{UserID: "u", CompanyID: "c", Resource: ResourceProject, Action: ActionRead})
	assert.EqualError(t, err, "db down")
}

func TestRBACService_Roles(t *testing.T) {
	svc := NewService(&fakeRepo{}, newTestEnforcer(t))
	roles := svc.Roles()
	assert.Len(t, roles, 4)
	assert.Equal(t, domain.RoleOwner, roles[0].Name)
	assert.Equal(t, []string{"*:*"}, roles[0].Permissions)
	assert.Contains(t, roles[3].Permissions, "statement:read")
}
