package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-sitebooks/internal/attendance/errors"
	"go-sitebooks/internal/ledger"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, companyID string, req RecordAttendanceRequest) (AttendanceResponse, error)
	RecordBulk(ctx context.Context, companyID string, req BulkAttendanceRequest) ([]AttendanceResponse, error)
	GetAll(ctx context.Context, companyID string, f Filter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AttendanceResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher ledger.Publisher
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher ledger.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, publisher: publisher, logger: l}
}

func (s *service) Record(ctx context.Context, companyID string, req RecordAttendanceRequest) (AttendanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, apperror.InvalidField("company_id")
	}
	date, err := dateutil.Parse("attendance_date", req.AttendanceDate)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("record attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureProject(ctx, qtx, companyID, req.ProjectID); err != nil {
		return AttendanceResponse{}, err
	}
	a, err := s.build(ctx, qtx, companyUUID, req.ProjectID, req.WorkerID, date, req.AttendanceInput)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if err := qtx.Create(ctx, a); err != nil {
		l.Warn("record attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(a)}); err != nil {
		l.Error("record attendance publish failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	l.Info("attendance recorded",
		zap.String("attendance_id", a.ID.String()),
		zap.String("worker_id", req.WorkerID),
		zap.String("date", req.AttendanceDate),
	)
	return mapToResponse(AttendanceView{Attendance: *a}), nil
}

// RecordBulk stores one attendance row per entry for a single project and
// date. Any failing entry aborts the whole batch.
func (s *service) RecordBulk(ctx context.Context, companyID string, req BulkAttendanceRequest) ([]AttendanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.InvalidField("company_id")
	}
	date, err := dateutil.Parse("attendance_date", req.AttendanceDate)
	if err != nil {
		return nil, err
	}

	if len(req.Entries) == 0 {
		return nil, attendanceerrors.ErrEmptyBatch
	}

	seen := make(map[string]struct{}, len(req.Entries))
	for _, e := range req.Entries {
		if _, dup := seen[e.WorkerID]; dup {
			return nil, attendanceerrors.ErrDuplicateWorkerInBatch
		}
		seen[e.WorkerID] = struct{}{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureProject(ctx, qtx, companyID, req.ProjectID); err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, 0, len(req.Entries))
	var first *Attendance
	for _, e := range req.Entries {
		a, err := s.build(ctx, qtx, companyUUID, req.ProjectID, e.WorkerID, date, e.AttendanceInput)
		if err != nil {
			l.Warn("bulk attendance entry rejected", zap.String("worker_id", e.WorkerID), zap.Error(err))
			return nil, err
		}
		if err := qtx.Create(ctx, a); err != nil {
			return nil, mapRepositoryError(err)
		}
		if first == nil {
			first = a
		}
		res = append(res, mapToResponse(AttendanceView{Attendance: *a}))
	}

	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(first)}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	l.Info("bulk attendance recorded",
		zap.String("project_id", req.ProjectID),
		zap.String("date", req.AttendanceDate),
		zap.Int("count", len(res)),
	)
	return res, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, f Filter) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID, f)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}
	a, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(AttendanceView{Attendance: *a}), nil
}

// Update replaces the record and recomputes the wage split. When the
// project or date moves, both the old and new day are announced.
func (s *service) Update(ctx context.Context, companyID, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}
	date, err := dateutil.Parse("attendance_date", req.AttendanceDate)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	before := changeOf(current)

	if current.ProjectID.String() != req.ProjectID {
		if err := s.ensureProject(ctx, qtx, companyID, req.ProjectID); err != nil {
			return AttendanceResponse{}, err
		}
	}

	next, err := s.build(ctx, qtx, current.CompanyID, req.ProjectID, req.WorkerID, date, req.AttendanceInput, id)
	if err != nil {
		return AttendanceResponse{}, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, next); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{before, changeOf(next)}); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	l.Info("attendance updated", zap.String("attendance_id", id))
	return mapToResponse(AttendanceView{Attendance: *next}), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrAttendanceNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(current)}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) ensureProject(ctx context.Context, repo Repository, companyID, projectID string) error {
	if _, err := uuid.Parse(projectID); err != nil {
		return attendanceerrors.ErrProjectNotFound
	}
	ok, err := repo.ProjectExists(ctx, companyID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return attendanceerrors.ErrProjectNotFound
	}
	return nil
}

// build loads the worker, checks the uniqueness of (worker, date, project)
// and computes the wage split. excludeID skips the row being updated.
func (s *service) build(
	ctx context.Context,
	repo Repository,
	companyID uuid.UUID,
	projectID, workerID string,
	date time.Time,
	in AttendanceInput,
	excludeID ...string,
) (*Attendance, error) {
	projectUUID, err := uuid.Parse(projectID)
	if err != nil {
		return nil, attendanceerrors.ErrProjectNotFound
	}
	workerUUID, err := uuid.Parse(workerID)
	if err != nil {
		return nil, attendanceerrors.ErrWorkerNotFound
	}

	w, err := repo.GetWorker(ctx, companyID.String(), workerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendanceerrors.ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	if !w.IsActive {
		return nil, attendanceerrors.ErrWorkerInactive
	}

	exclude := ""
	if len(excludeID) > 0 {
		exclude = excludeID[0]
	}
	exists, err := repo.ExistsForWorkerDate(ctx, companyID.String(), workerID, projectID, date, exclude)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, attendanceerrors.ErrAttendanceExists
	}

	a := &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyID,
		ProjectID:      projectUUID,
		WorkerID:       workerUUID,
		AttendanceDate: date,
	}
	if err := applyInput(a, in, w.DailyWage); err != nil {
		return nil, err
	}
	return a, nil
}

func changeOf(a *Attendance) ledger.Change {
	return ledger.Change{
		CompanyID: a.CompanyID.String(),
		ProjectID: a.ProjectID.String(),
		Date:      a.AttendanceDate,
		Source:    ledger.SourceAttendance,
		SourceID:  a.ID.String(),
	}
}

func mapToResponse(v AttendanceView) AttendanceResponse {
	a := v.Attendance
	return AttendanceResponse{
		ID:              a.ID.String(),
		ProjectID:       a.ProjectID.String(),
		ProjectName:     v.ProjectName,
		WorkerID:        a.WorkerID.String(),
		WorkerName:      v.WorkerName,
		AttendanceDate:  dateutil.Format(a.AttendanceDate),
		IsPresent:       a.IsPresent,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		HoursWorked:     a.HoursWorked,
		WorkDays:        a.WorkDays,
		DailyWage:       a.DailyWage,
		ActualWage:      a.ActualWage,
		PaidAmount:      a.PaidAmount,
		RemainingAmount: a.RemainingAmount,
		PaymentType:     a.PaymentType,
		WorkDescription: a.WorkDescription,
		Notes:           a.Notes,
	}
}
