package workertransfer_test

import (
	"context"
	"database/sql"
	"testing"

	"go-sitebooks/internal/ledger"
	ledgerMock "go-sitebooks/internal/ledger/mock"
	"go-sitebooks/internal/workertransfer"
	workertransfererrors "go-sitebooks/internal/workertransfer/errors"
	workertransferMock "go-sitebooks/internal/workertransfer/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *workertransferMock.MockRepository
	publisher *ledgerMock.MockPublisher
	service   workertransfer.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Setenv("DEFAULT_PHONE_REGION", "US")
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := workertransferMock.NewMockRepository(ctrl)
	publisher := ledgerMock.NewMockPublisher(ctrl)
	return &serviceDeps{
		sqlMock:   sqlMock,
		repo:      repo,
		publisher: publisher,
		service:   workertransfer.NewService(db, repo, publisher),
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

func validRequest(workerID, projectID string) workertransfer.TransferRequest {
	p := "650-253-0000"
	return workertransfer.TransferRequest{
		WorkerID:       workerID,
		ProjectID:      projectID,
		Amount:         decimal.RequireFromString("15000.555"),
		RecipientName:  "  Umm Saleh ",
		RecipientPhone: &p,
		TransferMethod: "Hawala",
		TransferDate:   "2024-04-01",
	}
}

func TestWorkerTransferService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	workerID := uuid.New().String()
	projectID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().WorkerExists(ctx, companyID, workerID).Return(true, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tr *workertransfer.WorkerTransfer) error {
			assert.Equal(t, "Umm Saleh", tr.RecipientName)
			assert.Equal(t, workertransfer.MethodHawala, tr.TransferMethod)
			assert.Equal(t, "+16502530000", *tr.RecipientPhone)
			assert.True(t, tr.Amount.Equal(decimal.RequireFromString("15000.56")))
			return nil
		})
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, changes []ledger.Change) error {
				require.Len(t, changes, 1)
				assert.Equal(t, ledger.SourceWorkerTransfer, changes[0].Source)
				return nil
			})

		res, err := deps.service.Create(ctx, companyID, validRequest(workerID, projectID))
		assert.NoError(t, err)
		assert.Equal(t, "2024-04-01", res.TransferDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation failures never open a transaction", func(t *testing.T) {
		cases := map[string]func(r *workertransfer.TransferRequest){
			"zero amount":    func(r *workertransfer.TransferRequest) { r.Amount = decimal.Zero },
			"unknown method": func(r *workertransfer.TransferRequest) { r.TransferMethod = "pigeon" },
			"bad phone":      func(r *workertransfer.TransferRequest) { p := "12"; r.RecipientPhone = &p },
			"blank name":     func(r *workertransfer.TransferRequest) { r.RecipientName = "  " },
			"bad date":       func(r *workertransfer.TransferRequest) { r.TransferDate = "2024-13-01" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				deps := setupServiceTest(t)
				req := validRequest(workerID, projectID)
				mutate(&req)

				_, err := deps.service.Create(ctx, companyID, req)
				assert.Error(t, err)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("unknown worker", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().WorkerExists(ctx, companyID, workerID).Return(false, nil)

		_, err := deps.service.Create(ctx, companyID, validRequest(workerID, projectID))
		assert.ErrorIs(t, err, workertransfererrors.ErrWorkerNotFound)
	})
}

func TestWorkerTransferService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, companyID, id)
		assert.ErrorIs(t, err, workertransfererrors.ErrTransferNotFound)
	})

	t.Run("deleted and announced", func(t *testing.T) {
		deps := setupServiceTest(t)
		row := &workertransfer.WorkerTransfer{ID: uuid.MustParse(id), ProjectID: uuid.New()}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, companyID, id).Return(row, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(1)).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, companyID, id))
	})
}
