package dailysummary

import (
	"context"
	"database/sql"
	"time"

	"go-sitebooks/internal/shared/dbtx"
	"go-sitebooks/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=daily_summary_repo.go -destination=mock/daily_summary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ActivityDates(ctx context.Context, companyID, projectID string, from time.Time) ([]time.Time, error)
	DayTotals(ctx context.Context, companyID, projectID string, date time.Time) (DayTotals, error)
	PreviousRemaining(ctx context.Context, companyID, projectID string, date time.Time) (decimal.Decimal, error)
	Upsert(ctx context.Context, s *DailySummary) error
	DeleteStale(ctx context.Context, companyID, projectID string, from time.Time, keep []time.Time) (int64, error)
	FindByDate(ctx context.Context, companyID, projectID string, date time.Time) (*DailySummary, error)
	FindRange(ctx context.Context, companyID, projectID string, from, to *time.Time) ([]DailySummary, error)
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

const activityDatesSQL = `
SELECT d FROM (
	SELECT attendance_date AS d FROM worker_attendance
		WHERE company_id = @company AND project_id = @project AND attendance_date >= @from
	UNION
	SELECT transfer_date FROM worker_transfers
		WHERE company_id = @company AND project_id = @project AND transfer_date >= @from
	UNION
	SELECT mp.purchase_date FROM material_purchases mp
		WHERE mp.company_id = @company AND mp.project_id = @project AND mp.purchase_date >= @from
		AND mp.paid_amount - COALESCE((SELECT SUM(sp.amount) FROM supplier_payments sp WHERE sp.purchase_id = mp.id), 0) > 0
	UNION
	SELECT payment_date FROM supplier_payments
		WHERE company_id = @company AND project_id = @project AND payment_date >= @from
	UNION
	SELECT transfer_date FROM fund_transfers
		WHERE company_id = @company AND project_id = @project AND transfer_date >= @from
	UNION
	SELECT transfer_date FROM project_fund_transfers
		WHERE company_id = @company AND (from_project_id = @project OR to_project_id = @project) AND transfer_date >= @from
) activity
ORDER BY d`

func (r *repository) ActivityDates(ctx context.Context, companyID, projectID string, from time.Time) ([]time.Time, error) {
	var rows []struct {
		D time.Time `gorm:"column:d"`
	}
	err := dbtx.Conn(ctx, r.db, r.tx).
		Raw(activityDatesSQL, map[string]any{"company": companyID, "project": projectID, "from": from}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.D
	}
	return dates, nil
}

const dayTotalsSQL = `
SELECT
	(SELECT COALESCE(SUM(amount), 0) FROM fund_transfers
		WHERE company_id = @company AND project_id = @project AND transfer_date = @date) AS fund_transfers,
	(SELECT COALESCE(SUM(amount), 0) FROM project_fund_transfers
		WHERE company_id = @company AND to_project_id = @project AND transfer_date = @date) AS incoming_project_transfers,
	(SELECT COALESCE(SUM(paid_amount), 0) FROM worker_attendance
		WHERE company_id = @company AND project_id = @project AND attendance_date = @date) AS worker_wages,
	(SELECT COALESCE(SUM(mp.paid_amount - COALESCE((SELECT SUM(sp.amount) FROM supplier_payments sp WHERE sp.purchase_id = mp.id), 0)), 0)
		FROM material_purchases mp
		WHERE mp.company_id = @company AND mp.project_id = @project AND mp.purchase_date = @date) AS material_costs,
	(SELECT COALESCE(SUM(amount), 0) FROM worker_transfers
		WHERE company_id = @company AND project_id = @project AND transfer_date = @date) AS worker_transfers,
	(SELECT COALESCE(SUM(amount), 0) FROM supplier_payments
		WHERE company_id = @company AND project_id = @project AND payment_date = @date) AS supplier_payments,
	(SELECT COALESCE(SUM(amount), 0) FROM project_fund_transfers
		WHERE company_id = @company AND from_project_id = @project AND transfer_date = @date) AS outgoing_project_transfers`

func (r *repository) DayTotals(ctx context.Context, companyID, projectID string, date time.Time) (DayTotals, error) {
	var t DayTotals
	err := dbtx.Conn(ctx, r.db, r.tx).
		Raw(dayTotalsSQL, map[string]any{"company": companyID, "project": projectID, "date": date}).
		Scan(&t).Error
	return t, err
}

func (r *repository) PreviousRemaining(ctx context.Context, companyID, projectID string, date time.Time) (decimal.Decimal, error) {
	var prev DailySummary
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("project_id = ? AND summary_date < ?", projectID, date).
		Order("summary_date DESC").
		Limit(1).
		Find(&prev).Error
	if err != nil {
		return decimal.Zero, err
	}
	return prev.RemainingBalance, nil
}

func (r *repository) Upsert(ctx context.Context, s *DailySummary) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "project_id"}, {Name: "summary_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"carried_forward",
				"total_income",
				"total_expenses",
				"total_fund_transfers",
				"total_incoming_project_transfers",
				"total_worker_wages",
				"total_material_costs",
				"total_worker_transfers",
				"total_supplier_payments",
				"total_outgoing_project_transfers",
				"remaining_balance",
				"updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) DeleteStale(ctx context.Context, companyID, projectID string, from time.Time, keep []time.Time) (int64, error) {
	q := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("project_id = ? AND summary_date >= ?", projectID, from)
	if len(keep) > 0 {
		q = q.Where("summary_date NOT IN ?", keep)
	}
	res := q.Delete(&DailySummary{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindByDate(ctx context.Context, companyID, projectID string, date time.Time) (*DailySummary, error) {
	var s DailySummary
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("project_id = ? AND summary_date = ?", projectID, date).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindRange(ctx context.Context, companyID, projectID string, from, to *time.Time) ([]DailySummary, error) {
	var rows []DailySummary
	q := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("project_id = ?", projectID)
	if from != nil {
		q = q.Where("summary_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("summary_date <= ?", *to)
	}
	err := q.Order("summary_date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ProjectExists(ctx context.Context, companyID, projectID string) (bool, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Table("projects").
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, projectID).
		Count(&count).Error
	return count > 0, err
}
