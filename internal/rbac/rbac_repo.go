package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(ctx context.Context, companyID string) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type UserRoleRow struct {
	UserID string
	Role   string
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

func (r *repository) GetUserRoles(ctx context.Context, companyID string) ([]UserRoleRow, error) {
	var rows []UserRoleRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id AS user_id, role").
		Where("company_id = ?", companyID).
		Where("is_active = ?", true).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role, resource, action").
		Where("company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}
