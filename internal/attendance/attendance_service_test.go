package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-sitebooks/internal/attendance"
	attendanceerrors "go-sitebooks/internal/attendance/errors"
	attendanceMock "go-sitebooks/internal/attendance/mock"
	"go-sitebooks/internal/ledger"
	ledgerMock "go-sitebooks/internal/ledger/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *attendanceMock.MockRepository
	publisher *ledgerMock.MockPublisher
	service   attendance.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := attendanceMock.NewMockRepository(ctrl)
	publisher := ledgerMock.NewMockPublisher(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		publisher: publisher,
		service:   attendance.NewService(db, repo, publisher),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAttendanceService_Record(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	projectID := uuid.New().String()
	workerID := uuid.New().String()
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	activeWorker := &attendance.WorkerRef{
		ID:        uuid.MustParse(workerID),
		Name:      "Saleh",
		DailyWage: decimal.NewFromInt(6000),
		IsActive:  true,
	}

	req := attendance.RecordAttendanceRequest{
		ProjectID:      projectID,
		WorkerID:       workerID,
		AttendanceDate: "2024-03-05",
		AttendanceInput: attendance.AttendanceInput{
			WorkDays:   decPtr("1.5"),
			PaidAmount: decPtr("4000"),
		},
	}

	t.Run("success snapshots wage and publishes ledger change", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, workerID).Return(activeWorker, nil)
		deps.repo.EXPECT().ExistsForWorkerDate(ctx, companyID, workerID, projectID, day, "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			assert.True(t, a.DailyWage.Equal(decimal.NewFromInt(6000)))
			assert.True(t, a.ActualWage.Equal(decimal.NewFromInt(9000)))
			assert.True(t, a.RemainingAmount.Equal(decimal.NewFromInt(5000)))
			assert.Equal(t, attendance.PaymentPartial, a.PaymentType)
			return nil
		})
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, changes []ledger.Change) error {
				require.Len(t, changes, 1)
				assert.Equal(t, projectID, changes[0].ProjectID)
				assert.Equal(t, ledger.SourceAttendance, changes[0].Source)
				assert.True(t, changes[0].Date.Equal(day))
				return nil
			})

		res, err := deps.service.Record(ctx, companyID, req)
		assert.NoError(t, err)
		assert.Equal(t, "2024-03-05", res.AttendanceDate)
		assert.Equal(t, attendance.PaymentPartial, res.PaymentType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate day is rejected before insert", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, workerID).Return(activeWorker, nil)
		deps.repo.EXPECT().ExistsForWorkerDate(ctx, companyID, workerID, projectID, day, "").Return(true, nil)

		_, err := deps.service.Record(ctx, companyID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceExists)
	})

	t.Run("unique violation from a concurrent insert maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, workerID).Return(activeWorker, nil)
		deps.repo.EXPECT().ExistsForWorkerDate(ctx, companyID, workerID, projectID, day, "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_attendance_worker_date_project",
		})

		_, err := deps.service.Record(ctx, companyID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceExists)
	})

	t.Run("inactive worker", func(t *testing.T) {
		deps := setupServiceTest(t)
		inactive := *activeWorker
		inactive.IsActive = false

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, workerID).Return(&inactive, nil)

		_, err := deps.service.Record(ctx, companyID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrWorkerInactive)
	})

	t.Run("unknown project", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(false, nil)

		_, err := deps.service.Record(ctx, companyID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrProjectNotFound)
	})

	t.Run("unknown worker", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, workerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Record(ctx, companyID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrWorkerNotFound)
	})

	t.Run("bad date never opens a transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.AttendanceDate = "05/03/2024"

		_, err := deps.service.Record(ctx, companyID, bad)
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_RecordBulk(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	projectID := uuid.New().String()
	w1, w2 := uuid.New().String(), uuid.New().String()

	worker := func(id string) *attendance.WorkerRef {
		return &attendance.WorkerRef{ID: uuid.MustParse(id), DailyWage: decimal.NewFromInt(5000), IsActive: true}
	}

	t.Run("records every entry and announces the day once", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, w1).Return(worker(w1), nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, w2).Return(worker(w2), nil)
		deps.repo.EXPECT().ExistsForWorkerDate(ctx, companyID, gomock.Any(), projectID, gomock.Any(), "").Return(false, nil).Times(2)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(1)).Return(nil)

		res, err := deps.service.RecordBulk(ctx, companyID, attendance.BulkAttendanceRequest{
			ProjectID:      projectID,
			AttendanceDate: "2024-03-06",
			Entries: []attendance.BulkAttendanceEntry{
				{WorkerID: w1, AttendanceInput: attendance.AttendanceInput{PaidAmount: decPtr("5000")}},
				{WorkerID: w2},
			},
		})
		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, attendance.PaymentFull, res[0].PaymentType)
		assert.Equal(t, attendance.PaymentCredit, res[1].PaymentType)
	})

	t.Run("one failing entry rolls back the batch", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, w1).Return(worker(w1), nil)
		deps.repo.EXPECT().ExistsForWorkerDate(ctx, companyID, w1, projectID, gomock.Any(), "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID, w2).Return(nil, errors.New("db down"))

		_, err := deps.service.RecordBulk(ctx, companyID, attendance.BulkAttendanceRequest{
			ProjectID:      projectID,
			AttendanceDate: "2024-03-06",
			Entries:        []attendance.BulkAttendanceEntry{{WorkerID: w1}, {WorkerID: w2}},
		})
		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("same worker twice", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.RecordBulk(ctx, companyID, attendance.BulkAttendanceRequest{
			ProjectID:      projectID,
			AttendanceDate: "2024-03-06",
			Entries:        []attendance.BulkAttendanceEntry{{WorkerID: w1}, {WorkerID: w1}},
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateWorkerInBatch)
	})

	t.Run("no entries", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.RecordBulk(ctx, companyID, attendance.BulkAttendanceRequest{
			ProjectID:      projectID,
			AttendanceDate: "2024-03-06",
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrEmptyBatch)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	oldProject, newProject := uuid.New(), uuid.New()
	workerID := uuid.New()
	id := uuid.New()

	current := &attendance.Attendance{
		ID:             id,
		CompanyID:      companyID,
		ProjectID:      oldProject,
		WorkerID:       workerID,
		AttendanceDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		DailyWage:      decimal.NewFromInt(5000),
	}

	t.Run("moving project announces old and new day", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, companyID.String(), id.String()).Return(current, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID.String(), newProject.String()).Return(true, nil)
		deps.repo.EXPECT().GetWorker(ctx, companyID.String(), workerID.String()).
			Return(&attendance.WorkerRef{ID: workerID, DailyWage: decimal.NewFromInt(7000), IsActive: true}, nil)
		deps.repo.EXPECT().ExistsForWorkerDate(ctx, companyID.String(), workerID.String(), newProject.String(), gomock.Any(), id.String()).
			Return(false, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			assert.Equal(t, id, a.ID)
			assert.Equal(t, newProject, a.ProjectID)
			return nil
		})
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, changes []ledger.Change) error {
				require.Len(t, changes, 2)
				assert.Equal(t, oldProject.String(), changes[0].ProjectID)
				assert.Equal(t, newProject.String(), changes[1].ProjectID)
				assert.Equal(t, "2024-03-07", changes[1].Date.Format("2006-01-02"))
				return nil
			})

		res, err := deps.service.Update(ctx, companyID.String(), id.String(), attendance.UpdateAttendanceRequest{
			ProjectID:      newProject.String(),
			WorkerID:       workerID.String(),
			AttendanceDate: "2024-03-07",
		})
		assert.NoError(t, err)
		assert.True(t, res.ActualWage.Equal(decimal.NewFromInt(7000)))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, companyID.String(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, companyID.String(), id.String(), attendance.UpdateAttendanceRequest{
			ProjectID:      oldProject.String(),
			WorkerID:       workerID.String(),
			AttendanceDate: "2024-03-05",
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	id := uuid.New()
	row := &attendance.Attendance{
		ID:             id,
		CompanyID:      companyID,
		ProjectID:      uuid.New(),
		AttendanceDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, companyID.String(), id.String()).Return(row, nil)
	deps.repo.EXPECT().Delete(ctx, companyID.String(), id.String()).Return(nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(1)).Return(nil)

	assert.NoError(t, deps.service.Delete(ctx, companyID.String(), id.String()))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	view := attendance.AttendanceView{
		Attendance: attendance.Attendance{
			ID:             uuid.New(),
			AttendanceDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			PaymentType:    attendance.PaymentCredit,
		},
		WorkerName:  "Saleh",
		ProjectName: "Tower A",
	}
	deps.repo.EXPECT().FindAll(ctx, "c1", attendance.Filter{WorkerID: "w1"}).Return([]attendance.AttendanceView{view}, nil)

	res, err := deps.service.GetAll(ctx, "c1", attendance.Filter{WorkerID: "w1"})
	assert.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Saleh", res[0].WorkerName)
	assert.Equal(t, "Tower A", res[0].ProjectName)
	assert.Equal(t, "2024-02-01", res[0].AttendanceDate)
}
