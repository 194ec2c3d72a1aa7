package supplier_test

import (
	"context"
	"testing"

	ledgerMock "go-sitebooks/internal/ledger/mock"
	"go-sitebooks/internal/supplier"
	suppliererrors "go-sitebooks/internal/supplier/errors"
	supplierMock "go-sitebooks/internal/supplier/mock"

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
	sqlMock   sqlmock.Sqlmock
	repo      *supplierMock.MockRepository
	publisher *ledgerMock.MockPublisher
	service   supplier.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Setenv("DEFAULT_PHONE_REGION", "US")
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := supplierMock.NewMockRepository(ctrl)
	publisher := ledgerMock.NewMockPublisher(ctrl)
	return &serviceDeps{
		sqlMock:   sqlMock,
		repo:      repo,
		publisher: publisher,
		service:   supplier.NewService(db, repo, publisher),
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

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *supplier.Supplier) error {
			assert.Equal(t, "Al Noor Cement", s.Name)
			assert.True(t, s.IsActive)
			return nil
		})

		res, err := deps.service.Create(ctx, companyID, supplier.SupplierRequest{Name: " Al Noor Cement "})
		assert.NoError(t, err)
		assert.Equal(t, "Al Noor Cement", res.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_supplier_name"})

		_, err := deps.service.Create(ctx, companyID, supplier.SupplierRequest{Name: "Al Noor"})
		assert.ErrorIs(t, err, suppliererrors.ErrSupplierNameExists)
	})

	t.Run("invalid phone", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := "000"

		_, err := deps.service.Create(ctx, companyID, supplier.SupplierRequest{Name: "X", Phone: &bad})
		assert.ErrorIs(t, err, suppliererrors.ErrInvalidPhone)
	})
}

func TestSupplierService_GetAll_Outstanding(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindAllWithBalance(ctx, "c1").Return([]supplier.SupplierBalance{
		{
			Supplier:       supplier.Supplier{ID: uuid.New(), Name: "Steel Co"},
			TotalPurchases: decimal.NewFromInt(100000),
			TotalPaid:      decimal.NewFromInt(35000),
		},
	}, nil)

	res, err := deps.service.GetAll(ctx, "c1")
	assert.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Outstanding.Equal(decimal.NewFromInt(65000)))
}

func TestSupplierService_Delete_WithLedger(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New().String()

	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().HasLedgerRecords(ctx, "c1", id).Return(true, nil)

	err := deps.service.Delete(ctx, "c1", id)
	assert.ErrorIs(t, err, suppliererrors.ErrSupplierHasLedger)
}

func TestSupplierService_CreatePayment(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	supplierID := uuid.New()
	projectID := uuid.New().String()
	purchaseID := uuid.New()
	purchaseIDStr := purchaseID.String()

	purchase := func() *supplier.PurchaseBalance {
		return &supplier.PurchaseBalance{
			ID:              purchaseID,
			SupplierID:      &supplierID,
			TotalAmount:     decimal.NewFromInt(10000),
			PaidAmount:      decimal.NewFromInt(2000),
			RemainingAmount: decimal.NewFromInt(8000),
		}
	}

	req := supplier.PaymentRequest{
		ProjectID:     projectID,
		PurchaseID:    &purchaseIDStr,
		Amount:        decimal.NewFromInt(3000),
		PaymentMethod: "cash",
		PaymentDate:   "2024-05-10",
	}

	t.Run("settles part of the purchase", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, supplierID.String()).Return(&supplier.Supplier{ID: supplierID}, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().LockPurchase(ctx, companyID, purchaseIDStr).Return(purchase(), nil)
		deps.repo.EXPECT().UpdatePurchaseBalance(ctx, purchaseIDStr, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, paid, remaining decimal.Decimal) error {
				assert.True(t, paid.Equal(decimal.NewFromInt(5000)))
				assert.True(t, remaining.Equal(decimal.NewFromInt(5000)))
				return nil
			})
		deps.repo.EXPECT().CreatePayment(ctx, gomock.Any()).Return(nil)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(1)).Return(nil)

		res, err := deps.service.CreatePayment(ctx, companyID, supplierID.String(), req)
		assert.NoError(t, err)
		require.NotNil(t, res.PurchaseID)
		assert.Equal(t, purchaseIDStr, *res.PurchaseID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cannot exceed remaining", func(t *testing.T) {
		deps := setupServiceTest(t)
		over := req
		over.Amount = decimal.NewFromInt(8001)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, supplierID.String()).Return(&supplier.Supplier{ID: supplierID}, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().LockPurchase(ctx, companyID, purchaseIDStr).Return(purchase(), nil)

		_, err := deps.service.CreatePayment(ctx, companyID, supplierID.String(), over)
		assert.ErrorIs(t, err, suppliererrors.ErrPaymentExceedsRemaining)
	})

	t.Run("purchase of another supplier", func(t *testing.T) {
		deps := setupServiceTest(t)
		other := purchase()
		otherSupplier := uuid.New()
		other.SupplierID = &otherSupplier

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, supplierID.String()).Return(&supplier.Supplier{ID: supplierID}, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().LockPurchase(ctx, companyID, purchaseIDStr).Return(other, nil)

		_, err := deps.service.CreatePayment(ctx, companyID, supplierID.String(), req)
		assert.ErrorIs(t, err, suppliererrors.ErrPurchaseNotFound)
	})

	t.Run("zero amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		zero := req
		zero.Amount = decimal.Zero

		_, err := deps.service.CreatePayment(ctx, companyID, supplierID.String(), zero)
		assert.ErrorIs(t, err, suppliererrors.ErrInvalidAmount)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, supplierID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CreatePayment(ctx, companyID, supplierID.String(), req)
		assert.ErrorIs(t, err, suppliererrors.ErrSupplierNotFound)
	})
}

func TestSupplierService_DeletePayment_RestoresPurchase(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	purchaseID := uuid.New()
	paymentID := uuid.New().String()
	payment := &supplier.Payment{
		ID:         uuid.MustParse(paymentID),
		ProjectID:  uuid.New(),
		PurchaseID: &purchaseID,
		Amount:     decimal.NewFromInt(3000),
	}

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindPaymentByID(ctx, "c1", paymentID).Return(payment, nil)
	deps.repo.EXPECT().LockPurchase(ctx, "c1", purchaseID.String()).Return(&supplier.PurchaseBalance{
		ID:              purchaseID,
		TotalAmount:     decimal.NewFromInt(10000),
		PaidAmount:      decimal.NewFromInt(5000),
		RemainingAmount: decimal.NewFromInt(5000),
	}, nil)
	deps.repo.EXPECT().UpdatePurchaseBalance(ctx, purchaseID.String(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, paid, remaining decimal.Decimal) error {
			assert.True(t, paid.Equal(decimal.NewFromInt(2000)))
			assert.True(t, remaining.Equal(decimal.NewFromInt(8000)))
			return nil
		})
	deps.repo.EXPECT().DeletePayment(ctx, "c1", paymentID).Return(nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(1)).Return(nil)

	assert.NoError(t, deps.service.DeletePayment(ctx, "c1", paymentID))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
