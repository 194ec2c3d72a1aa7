package worker_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-sitebooks/internal/worker"
	workererrors "go-sitebooks/internal/worker/errors"
	workerMock "go-sitebooks/internal/worker/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *workerMock.MockRepository
	redismock redismock.ClientMock
	service   worker.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Setenv("DEFAULT_PHONE_REGION", "US")
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	rdb, redisMock := redismock.NewClientMock()
	repo := workerMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		redismock: redisMock,
		service:   worker.NewService(db, repo, rdb),
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

func TestWorkerService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success normalizes phone and invalidates options cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		phoneNumber := "(650) 253-0000"

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *worker.Worker) error {
			assert.Equal(t, "Ali", w.Name)
			assert.True(t, w.IsActive)
			assert.Equal(t, "+16502530000", *w.Phone)
			assert.True(t, w.DailyWage.Equal(decimal.RequireFromString("5000.13")))
			return nil
		})
		deps.redismock.ExpectDel(worker.GetWorkerOptionsKey(companyID)).SetVal(1)

		res, err := deps.service.Create(ctx, companyID, worker.CreateWorkerRequest{
			Name:      "Ali",
			Type:      "mason",
			DailyWage: decimal.RequireFromString("5000.125"),
			Phone:     &phoneNumber,
		})
		require.NoError(t, err)
		assert.Equal(t, "mason", res.Type)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("zero wage rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, companyID, worker.CreateWorkerRequest{Name: "A", Type: "helper"})
		assert.ErrorIs(t, err, workererrors.ErrInvalidDailyWage)
	})

	t.Run("bad phone rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := "12"
		_, err := deps.service.Create(ctx, companyID, worker.CreateWorkerRequest{
			Name: "A", Type: "helper", DailyWage: decimal.NewFromInt(10), Phone: &bad,
		})
		assert.ErrorIs(t, err, workererrors.ErrInvalidPhone)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_worker_name"})

		_, err := deps.service.Create(ctx, companyID, worker.CreateWorkerRequest{
			Name: "A", Type: "helper", DailyWage: decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, workererrors.ErrWorkerNameExists)
	})
}

func TestWorkerService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	key := worker.GetWorkerOptionsKey(companyID)

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(key).SetVal(`[{"id":"w1","name":"Ali","type":"mason","daily_wage":"100"}]`)

		res, err := deps.service.GetOptions(ctx, companyID)
		require.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Ali", res[0].Name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindActiveByCompany(ctx, companyID).Return([]worker.Worker{
			{ID: id, Name: "Ali", Type: "mason", DailyWage: decimal.NewFromInt(100)},
		}, nil)

		expected := []worker.WorkerOption{{ID: id.String(), Name: "Ali", Type: "mason", DailyWage: decimal.NewFromInt(100)}}
		payload, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(key, payload, time.Hour).SetVal("OK")

		res, err := deps.service.GetOptions(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, expected, res)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestWorkerService_ToggleActive(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()
	deps := setupServiceTest(t)

	w := &worker.Worker{ID: id, Name: "Ali", IsActive: true, DailyWage: decimal.NewFromInt(100)}
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).Return(w, nil)
	deps.repo.EXPECT().Update(ctx, w).Return(nil)
	deps.redismock.ExpectDel(worker.GetWorkerOptionsKey(companyID)).SetVal(1)

	res, err := deps.service.ToggleActive(ctx, companyID, id.String(), false)
	require.NoError(t, err)
	assert.False(t, res.IsActive)
}

func TestWorkerService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("worker with records must be deactivated instead", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasLedgerRecords(ctx, companyID, id).Return(true, nil)

		assert.ErrorIs(t, deps.service.Delete(ctx, companyID, id), workererrors.ErrWorkerHasLedger)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasLedgerRecords(ctx, companyID, id).Return(false, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
		deps.redismock.ExpectDel(worker.GetWorkerOptionsKey(companyID)).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, companyID, id))
	})
}
