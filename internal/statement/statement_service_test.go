package statement_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	dailysummaryMock "go-sitebooks/internal/dailysummary/mock"
	"go-sitebooks/internal/events"
	"go-sitebooks/internal/messaging/kafka"
	kafkaMock "go-sitebooks/internal/messaging/kafka/mock"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/counter"
	counterMock "go-sitebooks/internal/shared/counter/mock"
	"go-sitebooks/internal/statement"
	statementerrors "go-sitebooks/internal/statement/errors"
	statementMock "go-sitebooks/internal/statement/mock"
	storageMock "go-sitebooks/internal/storage/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	repo      *statementMock.MockRepository
	summaries *dailysummaryMock.MockService
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	storage   *storageMock.MockStorage
	service   statement.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      statementMock.NewMockRepository(ctrl),
		summaries: dailysummaryMock.NewMockService(ctrl),
		counter:   counterMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		storage:   storageMock.NewMockStorage(ctrl),
	}
	deps.service = statement.NewService(db, deps.repo, deps.summaries, deps.counter, deps.outbox, deps.storage, rdb)
	return deps
}

func TestStatementService_Worker(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	workerID := uuid.New().String()
	params := statement.Params{WorkerID: workerID, From: "2024-06-01", To: "2024-06-30"}

	att := []statement.AttendanceRow{
		{AttendanceDate: day(2), IsPresent: true, WorkDays: d("1"), HoursWorked: d("8"), ActualWage: d("300"), PaidAmount: d("100")},
		{AttendanceDate: day(3), IsPresent: true, WorkDays: d("1"), HoursWorked: d("8"), ActualWage: d("300"), PaidAmount: d("300")},
	}
	trs := []statement.TransferRow{{TransferDate: day(4), Amount: d("120"), RecipientName: "Umm Ali", TransferMethod: "hawala"}}

	t.Run("aggregates attendance and transfers", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().WorkerName(ctx, companyID, workerID).Return("Ali", nil)
		deps.repo.EXPECT().Attendance(ctx, companyID, workerID, "", june).Return(att, nil)
		deps.repo.EXPECT().WorkerTransfers(ctx, companyID, workerID, "", june).Return(trs, nil)

		r, err := deps.service.Worker(ctx, companyID, params)
		require.NoError(t, err)
		assert.Equal(t, "Ali", r.WorkerName)
		assert.True(t, r.Totals.TotalEarned.Equal(d("600")))
		assert.True(t, r.Totals.Remaining.Equal(d("80")))
		assert.Len(t, r.Entries, 3)
	})

	t.Run("unknown worker", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().WorkerName(ctx, companyID, workerID).Return("", gorm.ErrRecordNotFound)

		_, err := deps.service.Worker(ctx, companyID, params)
		assert.ErrorIs(t, err, statementerrors.ErrWorkerNotFound)
	})

	t.Run("inverted range", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Worker(ctx, companyID, statement.Params{WorkerID: workerID, From: "2024-06-30", To: "2024-06-01"})
		assert.ErrorIs(t, err, apperror.ErrInvalidDateRange)
	})

	t.Run("malformed worker id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Worker(ctx, companyID, statement.Params{WorkerID: "nope", From: "2024-06-01", To: "2024-06-30"})
		assert.ErrorIs(t, err, statementerrors.ErrWorkerNotFound)
	})
}

func TestStatementService_Worker_Cache(t *testing.T) {
	t.Setenv("ENABLE_REPORT_CACHE", "true")
	t.Setenv("REPORT_CACHE_TTL_SECONDS", "60")

	ctx := context.Background()
	companyID := uuid.New().String()
	workerID := uuid.New().String()
	params := statement.Params{WorkerID: workerID, From: "2024-06-01", To: "2024-06-30"}
	key := statement.CacheKey(companyID, statement.KindWorker, params)

	att := []statement.AttendanceRow{
		{AttendanceDate: day(2), IsPresent: true, WorkDays: d("1"), ActualWage: d("250"), PaidAmount: d("50")},
	}
	expected := statement.BuildWorkerReport(workerID, "Ali", june, att, nil)
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	t.Run("miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redisMock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().WorkerName(ctx, companyID, workerID).Return("Ali", nil)
		deps.repo.EXPECT().Attendance(ctx, companyID, workerID, "", june).Return(att, nil)
		deps.repo.EXPECT().WorkerTransfers(ctx, companyID, workerID, "", june).Return(nil, nil)
		deps.redisMock.ExpectSet(key, payload, 60*time.Second).SetVal("OK")

		r, err := deps.service.Worker(ctx, companyID, params)
		require.NoError(t, err)
		assert.True(t, r.Totals.Remaining.Equal(d("200")))
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redisMock.ExpectGet(key).SetVal(string(payload))

		r, err := deps.service.Worker(ctx, companyID, params)
		require.NoError(t, err)
		assert.Equal(t, "Ali", r.WorkerName)
		assert.True(t, r.Totals.TotalEarned.Equal(d("250")))
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestStatementService_Supplier_OpeningBalance(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	companyID := uuid.New().String()
	supplierID := uuid.New().String()

	deps.repo.EXPECT().SupplierName(ctx, companyID, supplierID).Return("Al-Noor", nil)
	deps.repo.EXPECT().SupplierOpeningBalance(ctx, companyID, supplierID, june.From).Return(d("500"), nil)
	deps.repo.EXPECT().Purchases(ctx, companyID, "", supplierID, june).Return([]statement.PurchaseRow{
		{PurchaseNumber: "PUR-000010", PurchaseDate: day(3), PurchaseType: "credit", TotalAmount: d("200"), PaidAtPurchase: decimal.Zero},
	}, nil)
	deps.repo.EXPECT().SupplierPayments(ctx, companyID, "", supplierID, june).Return(nil, nil)

	r, err := deps.service.Supplier(ctx, companyID, statement.Params{SupplierID: supplierID, From: "2024-06-01", To: "2024-06-30"})
	require.NoError(t, err)
	assert.True(t, r.OpeningBalance.Equal(d("500")))
	assert.True(t, r.Totals.Outstanding.Equal(d("700")))
}

func TestStatementService_Render(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	companyID := uuid.New().String()
	projectID := uuid.New().String()
	p := statement.Params{ProjectID: projectID, From: "2024-06-01", To: "2024-06-30"}

	deps.repo.EXPECT().ProjectName(ctx, companyID, projectID).Return("Villa", nil)
	deps.repo.EXPECT().Attendance(ctx, companyID, "", projectID, june).Return([]statement.AttendanceRow{
		{WorkerID: uuid.New(), WorkerName: "Ali", WorkDays: d("1"), ActualWage: d("300"), PaidAmount: d("300")},
	}, nil)
	deps.repo.EXPECT().WorkerTransfers(ctx, companyID, "", projectID, june).Return(nil, nil)

	out, err := deps.service.Render(ctx, companyID, statement.KindProjectWorkers, statement.FormatCSV, p)
	require.NoError(t, err)
	assert.Equal(t, "project-workers-statement-2024-06-01-2024-06-30.csv", out.FileName)
	assert.Contains(t, string(out.Data), "Ali,1.00,300.00,300.00,0.00,0.00")

	_, err = deps.service.Render(ctx, companyID, "ledger", statement.FormatCSV, p)
	assert.ErrorIs(t, err, statementerrors.ErrUnsupportedKind)

	_, err = deps.service.Render(ctx, companyID, statement.KindProjectWorkers, "docx", p)
	assert.ErrorIs(t, err, statementerrors.ErrUnsupportedFormat)
}

func TestStatementService_RequestExport(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	userID := uuid.New().String()
	projectID := uuid.New().String()
	req := statement.ExportRequest{
		Kind:   statement.KindProjectDaily,
		Format: statement.FormatXLSX,
		Params: statement.Params{ProjectID: projectID, From: "2024-06-01", To: "2024-06-30"},
	}

	t.Run("stores job and outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypeExportNumber).Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		var jobID string
		deps.repo.EXPECT().CreateExport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, job *statement.ExportJob) error {
			jobID = job.ID.String()
			assert.Equal(t, "EXP-000007", job.ExportNumber)
			assert.Equal(t, statement.ExportPending, job.Status)
			require.NotNil(t, job.RequestedBy)
			assert.Equal(t, userID, job.RequestedBy.String())
			assert.JSONEq(t, `{"project_id":"`+projectID+`","from":"2024-06-01","to":"2024-06-30"}`, job.Params)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.StatementExportRequestedTopic, e.Topic)
			assert.Equal(t, jobID, e.AggregateID)

			var payload events.StatementExportRequestedEvent
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, jobID, payload.ExportID)
			assert.Equal(t, companyID, payload.CompanyID)
			return nil
		})

		res, err := deps.service.RequestExport(ctx, companyID, userID, req)
		require.NoError(t, err)
		assert.Equal(t, statement.ExportPending, res.Status)
		assert.Equal(t, "EXP-000007", res.ExportNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypeExportNumber).Return(int64(8), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateExport(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.RequestExport(ctx, companyID, userID, req)
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing subject", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.Params.ProjectID = ""
		_, err := deps.service.RequestExport(ctx, companyID, userID, bad)
		assert.ErrorIs(t, err, statementerrors.ErrProjectNotFound)
	})

	t.Run("range too long", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.Params.From = "2022-01-01"
		_, err := deps.service.RequestExport(ctx, companyID, userID, bad)
		assert.Error(t, err)
	})
}

func TestStatementService_ProcessExport(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	projectID := uuid.New().String()
	exportID := uuid.New()

	pendingJob := func() *statement.ExportJob {
		return &statement.ExportJob{
			ID:           exportID,
			ExportNumber: "EXP-000003",
			Kind:         statement.KindProjectWorkers,
			Format:       statement.FormatCSV,
			Params:       `{"project_id":"` + projectID + `","from":"2024-06-01","to":"2024-06-30"}`,
			Status:       statement.ExportPending,
		}
	}

	t.Run("renders and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindExport(ctx, companyID, exportID.String()).Return(pendingJob(), nil)
		deps.repo.EXPECT().ProjectName(ctx, companyID, projectID).Return("Villa", nil)
		deps.repo.EXPECT().Attendance(ctx, companyID, "", projectID, june).Return(nil, nil)
		deps.repo.EXPECT().WorkerTransfers(ctx, companyID, "", projectID, june).Return(nil, nil)

		name := "exports/" + companyID + "/EXP-000003-project-workers-statement-2024-06-01-2024-06-30.csv"
		deps.storage.EXPECT().Save(ctx, name, "text/csv; charset=utf-8", gomock.Any()).
			Return("https://files.example.com/"+name, nil)
		deps.repo.EXPECT().UpdateExport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, job *statement.ExportJob) error {
			assert.Equal(t, statement.ExportDone, job.Status)
			require.NotNil(t, job.FileURL)
			assert.Contains(t, *job.FileURL, "EXP-000003")
			assert.NotNil(t, job.CompletedAt)
			assert.Nil(t, job.Error)
			return nil
		})

		assert.NoError(t, deps.service.ProcessExport(ctx, companyID, exportID.String()))
	})

	t.Run("unknown project marks failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindExport(ctx, companyID, exportID.String()).Return(pendingJob(), nil)
		deps.repo.EXPECT().ProjectName(ctx, companyID, projectID).Return("", gorm.ErrRecordNotFound)
		deps.repo.EXPECT().UpdateExport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, job *statement.ExportJob) error {
			assert.Equal(t, statement.ExportFailed, job.Status)
			require.NotNil(t, job.Error)
			assert.Equal(t, "Project not found", *job.Error)
			return nil
		})

		assert.NoError(t, deps.service.ProcessExport(ctx, companyID, exportID.String()))
	})

	t.Run("storage failure marks failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindExport(ctx, companyID, exportID.String()).Return(pendingJob(), nil)
		deps.repo.EXPECT().ProjectName(ctx, companyID, projectID).Return("Villa", nil)
		deps.repo.EXPECT().Attendance(ctx, companyID, "", projectID, june).Return(nil, nil)
		deps.repo.EXPECT().WorkerTransfers(ctx, companyID, "", projectID, june).Return(nil, nil)
		deps.storage.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable"))
		deps.repo.EXPECT().UpdateExport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, job *statement.ExportJob) error {
			assert.Equal(t, statement.ExportFailed, job.Status)
			assert.Equal(t, "bucket unavailable", *job.Error)
			return nil
		})

		assert.NoError(t, deps.service.ProcessExport(ctx, companyID, exportID.String()))
	})

	t.Run("already processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		job.Status = statement.ExportDone
		deps.repo.EXPECT().FindExport(ctx, companyID, exportID.String()).Return(job, nil)

		assert.NoError(t, deps.service.ProcessExport(ctx, companyID, exportID.String()))
	})

	t.Run("missing job", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindExport(ctx, companyID, exportID.String()).Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, deps.service.ProcessExport(ctx, companyID, exportID.String()))
	})

	t.Run("update failure is returned", func(t *testing.T) {
		deps := setupServiceTest(t)
		job := pendingJob()
		job.Params = "{"
		deps.repo.EXPECT().FindExport(ctx, companyID, exportID.String()).Return(job, nil)
		deps.repo.EXPECT().UpdateExport(ctx, gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, deps.service.ProcessExport(ctx, companyID, exportID.String()))
	})
}

func TestStatementService_GetExport(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	companyID := uuid.New().String()
	id := uuid.New()
	url := "https://files.example.com/x.csv"

	deps.repo.EXPECT().FindExport(ctx, companyID, id.String()).Return(&statement.ExportJob{
		ID: id, ExportNumber: "EXP-000001", Status: statement.ExportDone, Params: `{"from":"2024-06-01","to":"2024-06-02"}`, FileURL: &url,
	}, nil)

	res, err := deps.service.GetExport(ctx, companyID, id.String())
	require.NoError(t, err)
	assert.Equal(t, url, *res.FileURL)
	assert.Equal(t, "2024-06-01", res.Params.From)

	_, err = deps.service.GetExport(ctx, companyID, "not-a-uuid")
	assert.ErrorIs(t, err, statementerrors.ErrExportNotFound)
}
