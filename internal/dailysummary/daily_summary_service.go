package dailysummary

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dailysummaryerrors "go-sitebooks/internal/dailysummary/errors"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	lockTTL     = 30 * time.Second
	lockBackoff = 250 * time.Millisecond
	lockRetries = 40
)

// Locker is satisfied by *redislock.Client.
//
//go:generate mockgen -source=daily_summary_service.go -destination=mock/daily_summary_service_mock.go -package=mock
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

type Service interface {
	Recompute(ctx context.Context, companyID, projectID string, date time.Time) (SummaryResponse, error)
	Rebuild(ctx context.Context, companyID, projectID string, from time.Time) (RebuildResult, error)
	GetByDate(ctx context.Context, companyID, projectID, date string) (SummaryResponse, error)
	GetRange(ctx context.Context, companyID, projectID string, from, to *time.Time) ([]SummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	locker Locker
	logger *zap.Logger
}

// NewService accepts a nil locker, in which case rebuilds run unguarded.
func NewService(db *sql.DB, repo Repository, locker Locker, logger ...*zap.Logger) Service {
	l := zap.L().Named("dailysummary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailysummary.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		locker: locker,
		logger: l,
	}
}

func LockKey(projectID string) string {
	return "lock:dailysummary:" + projectID
}

func (s *service) Recompute(ctx context.Context, companyID, projectID string, date time.Time) (SummaryResponse, error) {
	ids, err := parseIDs(companyID, projectID)
	if err != nil {
		return SummaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SummaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	carried, err := qtx.PreviousRemaining(ctx, companyID, projectID, date)
	if err != nil {
		return SummaryResponse{}, err
	}
	summary, err := s.computeDay(ctx, qtx, ids, date, carried)
	if err != nil {
		return SummaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SummaryResponse{}, err
	}
	return mapToResponse(summary), nil
}

// Rebuild recomputes every activity date from `from` onward in order and
// drops summaries of dates that no longer carry any ledger row.
func (s *service) Rebuild(ctx context.Context, companyID, projectID string, from time.Time) (RebuildResult, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	ids, err := parseIDs(companyID, projectID)
	if err != nil {
		return RebuildResult{}, err
	}

	release, err := s.lock(ctx, projectID)
	if err != nil {
		return RebuildResult{}, err
	}
	defer release()

	started := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("rebuild daily summaries begin tx failed", zap.Error(err))
		return RebuildResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.ProjectExists(ctx, companyID, projectID)
	if err != nil {
		return RebuildResult{}, err
	}
	if !ok {
		return RebuildResult{}, dailysummaryerrors.ErrProjectNotFound
	}

	dates, err := qtx.ActivityDates(ctx, companyID, projectID, from)
	if err != nil {
		return RebuildResult{}, err
	}

	carried, err := qtx.PreviousRemaining(ctx, companyID, projectID, from)
	if err != nil {
		return RebuildResult{}, err
	}
	for _, d := range dates {
		summary, err := s.computeDay(ctx, qtx, ids, d, carried)
		if err != nil {
			return RebuildResult{}, err
		}
		carried = summary.RemainingBalance
	}

	removed, err := qtx.DeleteStale(ctx, companyID, projectID, from, dates)
	if err != nil {
		return RebuildResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return RebuildResult{}, err
	}

	l.Info("daily summaries rebuilt",
		zap.String("project_id", projectID),
		zap.String("from", dateutil.Format(from)),
		zap.Int("recomputed", len(dates)),
		zap.Int64("removed", removed),
		zap.Duration("elapsed", time.Since(started)),
	)
	return RebuildResult{
		ProjectID:  projectID,
		From:       dateutil.Format(from),
		Recomputed: len(dates),
		Removed:    removed,
	}, nil
}

func (s *service) GetByDate(ctx context.Context, companyID, projectID, date string) (SummaryResponse, error) {
	d, err := dateutil.Parse("date", date)
	if err != nil {
		return SummaryResponse{}, err
	}
	if _, err := uuid.Parse(projectID); err != nil {
		return SummaryResponse{}, dailysummaryerrors.ErrProjectNotFound
	}
	summary, err := s.repo.FindByDate(ctx, companyID, projectID, d)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SummaryResponse{}, dailysummaryerrors.ErrSummaryNotFound
		}
		return SummaryResponse{}, err
	}
	return mapToResponse(summary), nil
}

func (s *service) GetRange(ctx context.Context, companyID, projectID string, from, to *time.Time) ([]SummaryResponse, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, dailysummaryerrors.ErrProjectNotFound
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, apperror.ErrInvalidDateRange
	}
	ok, err := s.repo.ProjectExists(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dailysummaryerrors.ErrProjectNotFound
	}

	rows, err := s.repo.FindRange(ctx, companyID, projectID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]SummaryResponse, len(rows))
	for i := range rows {
		res[i] = mapToResponse(&rows[i])
	}
	return res, nil
}

func (s *service) computeDay(ctx context.Context, repo Repository, ids [2]uuid.UUID, date time.Time, carried decimal.Decimal) (*DailySummary, error) {
	totals, err := repo.DayTotals(ctx, ids[0].String(), ids[1].String(), date)
	if err != nil {
		return nil, err
	}
	summary := &DailySummary{
		ID:          uuid.New(),
		CompanyID:   ids[0],
		ProjectID:   ids[1],
		SummaryDate: date,
	}
	Build(summary, carried, totals)
	if err := repo.Upsert(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// lock returns a release func; without a locker it is a no-op.
func (s *service) lock(ctx context.Context, projectID string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	lock, err := s.locker.Obtain(ctx, LockKey(projectID), lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockBackoff), lockRetries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, dailysummaryerrors.ErrRebuildInProgress
	}
	if err != nil {
		return nil, err
	}

	return func() {
		if lock == nil {
			return
		}
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			s.logger.Warn("release daily summary lock failed", zap.String("project_id", projectID), zap.Error(err))
		}
	}, nil
}

func parseIDs(companyID, projectID string) ([2]uuid.UUID, error) {
	c, err := uuid.Parse(companyID)
	if err != nil {
		return [2]uuid.UUID{}, apperror.InvalidField("company_id")
	}
	p, err := uuid.Parse(projectID)
	if err != nil {
		return [2]uuid.UUID{}, dailysummaryerrors.ErrProjectNotFound
	}
	return [2]uuid.UUID{c, p}, nil
}

func mapToResponse(s *DailySummary) SummaryResponse {
	return SummaryResponse{
		ProjectID:                     s.ProjectID.String(),
		SummaryDate:                   dateutil.Format(s.SummaryDate),
		CarriedForward:                s.CarriedForward,
		TotalIncome:                   s.TotalIncome,
		TotalExpenses:                 s.TotalExpenses,
		TotalFundTransfers:            s.TotalFundTransfers,
		TotalIncomingProjectTransfers: s.TotalIncomingProjectTransfers,
		TotalWorkerWages:              s.TotalWorkerWages,
		TotalMaterialCosts:            s.TotalMaterialCosts,
		TotalWorkerTransfers:          s.TotalWorkerTransfers,
		TotalSupplierPayments:         s.TotalSupplierPayments,
		TotalOutgoingProjectTransfers: s.TotalOutgoingProjectTransfers,
		RemainingBalance:              s.RemainingBalance,
	}
}
