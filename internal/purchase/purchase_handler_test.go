package purchase_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sitebooks/internal/purchase"
	purchaseMock "go-sitebooks/internal/purchase/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestPurchaseHandler_GetAll_TotalsFollowFilters(t *testing.T) {
	svc := purchaseMock.NewMockService(gomock.NewController(t))
	h := purchase.NewHandler(svc, zap.NewNop())

	cement := "cement"
	svc.EXPECT().GetAll(gomock.Any(), "company-1", purchase.Filter{PurchaseType: "credit"}).Return([]purchase.PurchaseResponse{
		{ID: "p1", PurchaseNumber: "PUR-000001", MaterialName: "Portland", MaterialCategory: &cement, TotalAmount: d("100"), PaidAmount: d("40"), RemainingAmount: d("60")},
		{ID: "p2", PurchaseNumber: "PUR-000002", MaterialName: "Rebar", TotalAmount: d("500"), PaidAmount: d("0"), RemainingAmount: d("500")},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/purchases?type=credit&category=Cement", "")
	h.GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data struct {
			Items  []purchase.PurchaseResponse `json:"items"`
			Totals purchase.PurchaseTotals     `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data.Items, 1)
	assert.Equal(t, 1, env.Data.Totals.Count)
	assert.True(t, env.Data.Totals.RemainingAmount.Equal(d("60")))
}

func TestPurchaseHandler_Create_BindError(t *testing.T) {
	svc := purchaseMock.NewMockService(gomock.NewController(t))
	h := purchase.NewHandler(svc, zap.NewNop())

	c, w := newTestContext(http.MethodPost, "/purchases", `{"material_name":"Sand"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
