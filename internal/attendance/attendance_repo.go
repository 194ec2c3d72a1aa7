package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, companyID, id string) (*Attendance, error)
	FindAll(ctx context.Context, companyID string, f Filter) ([]AttendanceView, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, companyID, id string) error
	ExistsForWorkerDate(ctx context.Context, companyID, workerID, projectID string, date time.Time, excludeID string) (bool, error)
	GetWorker(ctx context.Context, companyID, workerID string) (*WorkerRef, error)
	ProjectExists(ctx context.Context, companyID, projectID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Attendance, error) {
	var a Attendance
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, f Filter) ([]AttendanceView, error) {
	var rows []AttendanceView
	q := dbtx.Conn(ctx, r.db, r.tx).
		Table("worker_attendance AS a").
		Select("a.*, w.name AS worker_name, p.name AS project_name").
		Joins("JOIN workers w ON w.id = a.worker_id").
		Joins("JOIN projects p ON p.id = a.project_id").
		Where("a.company_id = ?", companyID)

	if f.ProjectID != "" {
		q = q.Where("a.project_id = ?", f.ProjectID)
	}
	if f.WorkerID != "" {
		q = q.Where("a.worker_id = ?", f.WorkerID)
	}
	if f.From != nil {
		q = q.Where("a.attendance_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("a.attendance_date <= ?", *f.To)
	}

	err := q.Order("a.attendance_date DESC, w.name ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return dbtx.Conn(ctx, r.db, r.tx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Attendance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ExistsForWorkerDate(ctx context.Context, companyID, workerID, projectID string, date time.Time, excludeID string) (bool, error) {
	var count int64
	q := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Attendance{}).
		Scopes(tenant.Scope(companyID)).
		Where("worker_id = ? AND project_id = ? AND attendance_date = ?", workerID, projectID, date)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) GetWorker(ctx context.Context, companyID, workerID string) (*WorkerRef, error) {
	var w WorkerRef
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("workers").
		Select("id, name, daily_wage, is_active").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, workerID).
		Take(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) ProjectExists(ctx context.Context, companyID, projectID string) (bool, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("projects").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, projectID).
		Count(&count).Error
	return count > 0, err
}
