package supplier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sitebooks/internal/supplier"
	supplierMock "go-sitebooks/internal/supplier/mock"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", "company-1")
	return c, w
}

func TestSupplierHandler_GetAll_WithBalanceSortedByOutstanding(t *testing.T) {
	svc := supplierMock.NewMockService(gomock.NewController(t))
	h := supplier.NewHandler(svc, zap.NewNop())

	svc.EXPECT().GetAll(gomock.Any(), "company-1").Return([]supplier.SupplierResponse{
		{ID: "s1", Name: "Paid Up", Outstanding: decimal.Zero, IsActive: true},
		{ID: "s2", Name: "Small", Outstanding: decimal.NewFromInt(100), IsActive: true},
		{ID: "s3", Name: "Large", Outstanding: decimal.NewFromInt(900), IsActive: true},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/suppliers?with_balance=true&sort_by=outstanding", "")
	h.GetAll(c)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, body, "Paid Up")
	assert.Less(t, strings.Index(body, "Large"), strings.Index(body, "Small"))
}

func TestSupplierHandler_CreatePayment(t *testing.T) {
	t.Run("uses supplier id from path", func(t *testing.T) {
		svc := supplierMock.NewMockService(gomock.NewController(t))
		h := supplier.NewHandler(svc, zap.NewNop())

		svc.EXPECT().CreatePayment(gomock.Any(), "company-1", "sup-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, req supplier.PaymentRequest) (supplier.PaymentResponse, error) {
				assert.True(t, req.Amount.Equal(decimal.NewFromInt(2500)))
				return supplier.PaymentResponse{ID: "pay-1"}, nil
			})

		body := `{"project_id":"3f1c1f8e-2a59-4b6e-9d3a-0f4a6a8d2c11","amount":2500,"payment_method":"bank","payment_date":"2024-05-01"}`
		c, w := newTestContext(http.MethodPost, "/suppliers/sup-1/payments", body)
		c.Params = gin.Params{{Key: "id", Value: "sup-1"}}
		h.CreatePayment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "pay-1")
	})

	t.Run("unknown method", func(t *testing.T) {
		svc := supplierMock.NewMockService(gomock.NewController(t))
		h := supplier.NewHandler(svc, zap.NewNop())

		body := `{"project_id":"3f1c1f8e-2a59-4b6e-9d3a-0f4a6a8d2c11","amount":2500,"payment_method":"barter","payment_date":"2024-05-01"}`
		c, w := newTestContext(http.MethodPost, "/suppliers/sup-1/payments", body)
		c.Params = gin.Params{{Key: "id", Value: "sup-1"}}
		h.CreatePayment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSupplierHandler_GetPayments_QuerySupplier(t *testing.T) {
	svc := supplierMock.NewMockService(gomock.NewController(t))
	h := supplier.NewHandler(svc, zap.NewNop())

	svc.EXPECT().GetPayments(gomock.Any(), "company-1", supplier.PaymentFilter{SupplierID: "sup-2"}).Return(nil, nil)

	c, w := newTestContext(http.MethodGet, "/supplier-payments?supplier_id=sup-2", "")
	h.GetPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
