package purchase_test

import (
	"context"
	"testing"

	ledgerMock "go-sitebooks/internal/ledger/mock"
	"go-sitebooks/internal/purchase"
	purchaseerrors "go-sitebooks/internal/purchase/errors"
	purchaseMock "go-sitebooks/internal/purchase/mock"
	"go-sitebooks/internal/shared/counter"
	counterMock "go-sitebooks/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *purchaseMock.MockRepository
	counter   *counterMock.MockRepository
	publisher *ledgerMock.MockPublisher
	service   purchase.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := purchaseMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	publisher := ledgerMock.NewMockPublisher(ctrl)
	return &serviceDeps{
		sqlMock:   sqlMock,
		repo:      repo,
		counter:   counterRepo,
		publisher: publisher,
		service:   purchase.NewService(db, repo, counterRepo, publisher),
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

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPurchaseService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	projectID := uuid.New().String()
	supplierID := uuid.New().String()

	t.Run("cash purchase is fully paid and numbered", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypePurchaseNumber).Return(int64(42), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *purchase.Purchase) error {
			assert.Equal(t, "PUR-000042", p.PurchaseNumber)
			assert.True(t, p.TotalAmount.Equal(d("1234.63")))
			assert.True(t, p.PaidAmount.Equal(p.TotalAmount))
			assert.True(t, p.RemainingAmount.IsZero())
			return nil
		})
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(1)).Return(nil)

		res, err := deps.service.Create(ctx, companyID, purchase.PurchaseRequest{
			ProjectID:    projectID,
			MaterialName: "Cement",
			Unit:         "bag",
			Quantity:     d("12.5"),
			UnitPrice:    d("98.7654"),
			PurchaseType: "cash",
			PurchaseDate: "2024-06-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, "PUR-000042", res.PurchaseNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("credit purchase keeps the balance open", func(t *testing.T) {
		deps := setupServiceTest(t)
		paid := d("300")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ProjectExists(ctx, companyID, projectID).Return(true, nil)
		deps.repo.EXPECT().SupplierExists(ctx, companyID, supplierID).Return(true, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypePurchaseNumber).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.service.Create(ctx, companyID, purchase.PurchaseRequest{
			ProjectID:    projectID,
			SupplierID:   &supplierID,
			MaterialName: "Rebar",
			Unit:         "ton",
			Quantity:     d("2"),
			UnitPrice:    d("500"),
			PurchaseType: "credit",
			PaidAmount:   &paid,
			PurchaseDate: "2024-06-01",
		})
		assert.NoError(t, err)
		assert.True(t, res.RemainingAmount.Equal(d("700")))
		assert.True(t, res.RemainingAmount.Equal(res.TotalAmount.Sub(res.PaidAmount)))
	})

	t.Run("rejections", func(t *testing.T) {
		overpaid := d("2000")
		cases := []struct {
			name string
			req  purchase.PurchaseRequest
			want error
		}{
			{
				name: "credit without supplier",
				req:  purchase.PurchaseRequest{ProjectID: projectID, Quantity: d("1"), UnitPrice: d("1"), PurchaseType: "credit", PurchaseDate: "2024-06-01"},
				want: purchaseerrors.ErrSupplierRequired,
			},
			{
				name: "zero quantity",
				req:  purchase.PurchaseRequest{ProjectID: projectID, Quantity: d("0"), UnitPrice: d("1"), PurchaseType: "cash", PurchaseDate: "2024-06-01"},
				want: purchaseerrors.ErrInvalidQuantity,
			},
			{
				name: "negative price",
				req:  purchase.PurchaseRequest{ProjectID: projectID, Quantity: d("1"), UnitPrice: d("-1"), PurchaseType: "cash", PurchaseDate: "2024-06-01"},
				want: purchaseerrors.ErrInvalidUnitPrice,
			},
			{
				name: "unknown type",
				req:  purchase.PurchaseRequest{ProjectID: projectID, Quantity: d("1"), UnitPrice: d("1"), PurchaseType: "barter", PurchaseDate: "2024-06-01"},
				want: purchaseerrors.ErrInvalidPurchaseType,
			},
			{
				name: "overpaid credit",
				req: purchase.PurchaseRequest{
					ProjectID: projectID, SupplierID: &supplierID, Quantity: d("1"), UnitPrice: d("1000"),
					PurchaseType: "credit", PaidAmount: &overpaid, PurchaseDate: "2024-06-01",
				},
				want: purchaseerrors.ErrInvalidPaidAmount,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupServiceTest(t)
				_, err := deps.service.Create(ctx, companyID, tc.req)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestPurchaseService_Update_LinkedPayments(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	supplierID := uuid.New()
	otherSupplier := uuid.New().String()
	supplierIDStr := supplierID.String()
	id := uuid.New()

	existing := func() *purchase.Purchase {
		return &purchase.Purchase{
			ID:           id,
			CompanyID:    companyID,
			ProjectID:    uuid.New(),
			SupplierID:   &supplierID,
			PurchaseType: purchase.TypeCredit,
			TotalAmount:  d("1000"),
			PaidAmount:   d("550"),
		}
	}
	request := func(p *purchase.Purchase, supplier string, purchaseType string, paid string) purchase.PurchaseRequest {
		amount := d(paid)
		return purchase.PurchaseRequest{
			ProjectID:    p.ProjectID.String(),
			SupplierID:   &supplier,
			MaterialName: "Sand",
			Unit:         "m3",
			Quantity:     d("10"),
			UnitPrice:    d("100"),
			PurchaseType: purchaseType,
			PaidAmount:   &amount,
			PurchaseDate: "2024-06-02",
		}
	}

	t.Run("paid below linked payments", func(t *testing.T) {
		deps := setupServiceTest(t)
		current := existing()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockByID(ctx, companyID.String(), id.String()).Return(current, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID.String(), current.ProjectID.String()).Return(true, nil)
		deps.repo.EXPECT().SupplierExists(ctx, companyID.String(), supplierIDStr).Return(true, nil)
		deps.repo.EXPECT().LinkedPaymentsTotal(ctx, companyID.String(), id.String()).Return(d("250"), nil)

		_, err := deps.service.Update(ctx, companyID.String(), id.String(), request(current, supplierIDStr, "credit", "100"))
		assert.ErrorIs(t, err, purchaseerrors.ErrPaidBelowPayments)
	})

	t.Run("supplier change", func(t *testing.T) {
		deps := setupServiceTest(t)
		current := existing()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockByID(ctx, companyID.String(), id.String()).Return(current, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID.String(), current.ProjectID.String()).Return(true, nil)
		deps.repo.EXPECT().SupplierExists(ctx, companyID.String(), otherSupplier).Return(true, nil)
		deps.repo.EXPECT().LinkedPaymentsTotal(ctx, companyID.String(), id.String()).Return(d("250"), nil)

		_, err := deps.service.Update(ctx, companyID.String(), id.String(), request(current, otherSupplier, "credit", "550"))
		assert.ErrorIs(t, err, purchaseerrors.ErrPaymentsLinked)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("switch to cash", func(t *testing.T) {
		deps := setupServiceTest(t)
		current := existing()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockByID(ctx, companyID.String(), id.String()).Return(current, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID.String(), current.ProjectID.String()).Return(true, nil)
		deps.repo.EXPECT().SupplierExists(ctx, companyID.String(), supplierIDStr).Return(true, nil)
		deps.repo.EXPECT().LinkedPaymentsTotal(ctx, companyID.String(), id.String()).Return(d("250"), nil)

		_, err := deps.service.Update(ctx, companyID.String(), id.String(), request(current, supplierIDStr, "cash", "0"))
		assert.ErrorIs(t, err, purchaseerrors.ErrPaymentsLinked)
	})

	t.Run("same supplier and type keeps the settled amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		current := existing()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockByID(ctx, companyID.String(), id.String()).Return(current, nil)
		deps.repo.EXPECT().ProjectExists(ctx, companyID.String(), current.ProjectID.String()).Return(true, nil)
		deps.repo.EXPECT().SupplierExists(ctx, companyID.String(), supplierIDStr).Return(true, nil)
		deps.repo.EXPECT().LinkedPaymentsTotal(ctx, companyID.String(), id.String()).Return(d("250"), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Len(2)).Return(nil)

		res, err := deps.service.Update(ctx, companyID.String(), id.String(), request(current, supplierIDStr, "credit", "550"))
		require.NoError(t, err)
		assert.True(t, res.PaidAmount.Equal(d("550")))
		assert.True(t, res.RemainingAmount.Equal(d("450")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPurchaseService_Delete_WithPayments(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().LockByID(ctx, "c1", id).Return(&purchase.Purchase{}, nil)
	deps.repo.EXPECT().LinkedPaymentsTotal(ctx, "c1", id).Return(d("10"), nil)

	err := deps.service.Delete(ctx, "c1", id)
	assert.ErrorIs(t, err, purchaseerrors.ErrPurchaseHasPayments)
}

func TestTotals(t *testing.T) {
	totals := purchase.Totals([]purchase.PurchaseResponse{
		{TotalAmount: d("100"), PaidAmount: d("100"), RemainingAmount: d("0")},
		{TotalAmount: d("250.50"), PaidAmount: d("50"), RemainingAmount: d("200.50")},
	})
	assert.Equal(t, 2, totals.Count)
	assert.True(t, totals.TotalAmount.Equal(d("350.50")))
	assert.True(t, totals.RemainingAmount.Equal(d("200.50")))
}
