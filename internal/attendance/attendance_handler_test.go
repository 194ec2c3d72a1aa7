package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sitebooks/internal/attendance"
	attendanceerrors "go-sitebooks/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeService struct {
	recordFn     func(ctx context.Context, companyID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error)
	recordBulkFn func(ctx context.Context, companyID string, req attendance.BulkAttendanceRequest) ([]attendance.AttendanceResponse, error)
	getAllFn     func(ctx context.Context, companyID string, f attendance.Filter) ([]attendance.AttendanceResponse, error)
}

func (f *fakeService) Record(ctx context.Context, companyID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.recordFn(ctx, companyID, req)
}

func (f *fakeService) RecordBulk(ctx context.Context, companyID string, req attendance.BulkAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	return f.recordBulkFn(ctx, companyID, req)
}

func (f *fakeService) GetAll(ctx context.Context, companyID string, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}

func (f *fakeService) GetByID(context.Context, string, string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
}

func (f *fakeService) Update(context.Context, string, string, attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeService) Delete(context.Context, string, string) error {
	return nil
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", "company-1")
	return c, w
}

func TestAttendanceHandler_Record(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{
			recordFn: func(_ context.Context, companyID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, "company-1", companyID)
				assert.Equal(t, "2024-03-05", req.AttendanceDate)
				require.NotNil(t, req.WorkDays)
				assert.Equal(t, "0.75", req.WorkDays.String())
				return attendance.AttendanceResponse{ID: "a1", PaymentType: attendance.PaymentCredit}, nil
			},
		}, zap.NewNop())

		body := `{"project_id":"3f1c1f8e-2a59-4b6e-9d3a-0f4a6a8d2c11","worker_id":"7b0e5c8e-8a59-4b6e-9d3a-0f4a6a8d2c22","attendance_date":"2024-03-05","work_days":0.75}`
		c, w := newTestContext(http.MethodPost, "/attendance", body)
		h.Record(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"payment_type":"credit"`)
	})

	t.Run("missing worker id", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{}, zap.NewNop())

		c, w := newTestContext(http.MethodPost, "/attendance", `{"project_id":"3f1c1f8e-2a59-4b6e-9d3a-0f4a6a8d2c11","attendance_date":"2024-03-05"}`)
		h.Record(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{
			recordFn: func(context.Context, string, attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrAttendanceExists
			},
		}, zap.NewNop())

		body := `{"project_id":"3f1c1f8e-2a59-4b6e-9d3a-0f4a6a8d2c11","worker_id":"7b0e5c8e-8a59-4b6e-9d3a-0f4a6a8d2c22","attendance_date":"2024-03-05"}`
		c, w := newTestContext(http.MethodPost, "/attendance", body)
		h.Record(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ATTENDANCE_EXISTS")
	})
}

func TestAttendanceHandler_RecordBulk_RequiresEntries(t *testing.T) {
	h := attendance.NewHandler(&fakeService{}, zap.NewNop())

	c, w := newTestContext(http.MethodPost, "/attendance/bulk",
		`{"project_id":"3f1c1f8e-2a59-4b6e-9d3a-0f4a6a8d2c11","attendance_date":"2024-03-05","entries":[]}`)
	h.RecordBulk(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_GetAll(t *testing.T) {
	t.Run("passes filters and narrows by payment type", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{
			getAllFn: func(_ context.Context, _ string, f attendance.Filter) ([]attendance.AttendanceResponse, error) {
				assert.Equal(t, "w1", f.WorkerID)
				require.NotNil(t, f.From)
				assert.Equal(t, "2024-03-01", f.From.Format("2006-01-02"))
				assert.Nil(t, f.To)
				return []attendance.AttendanceResponse{
					{ID: "a1", PaymentType: attendance.PaymentFull},
					{ID: "a2", PaymentType: attendance.PaymentCredit},
					{ID: "a3", PaymentType: attendance.PaymentCredit},
				}, nil
			},
		}, zap.NewNop())

		c, w := newTestContext(http.MethodGet, "/attendance?worker_id=w1&from=2024-03-01&payment_type=credit", "")
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data []attendance.AttendanceResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 2)
		assert.Equal(t, "a2", env.Data[0].ID)
	})

	t.Run("inverted range", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{}, zap.NewNop())

		c, w := newTestContext(http.MethodGet, "/attendance?from=2024-03-10&to=2024-03-01", "")
		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceHandler_GetByID_NotFound(t *testing.T) {
	h := attendance.NewHandler(&fakeService{}, zap.NewNop())

	c, w := newTestContext(http.MethodGet, "/attendance/x", "")
	c.Params = gin.Params{{Key: "id", Value: "x"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
