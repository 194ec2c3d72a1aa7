package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sitebooks/internal/user"
	usererrors "go-sitebooks/internal/user/errors"
	userMock "go-sitebooks/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", "company-1")
	c.Set("user_id", "actor-1")
	return c, w
}

func TestUserHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := userMock.NewMockService(gomock.NewController(t))
	h := user.NewHandler(svc, zap.NewNop())

	svc.EXPECT().GetAll(gomock.Any(), "company-1").Return([]user.UserResponse{
		{ID: "1", Email: "zed@site.io", Role: "VIEWER"},
		{ID: "2", Email: "amy@site.io", Role: "OWNER"},
		{ID: "3", Email: "bob@site.io", Role: "VIEWER"},
	}, nil)

	c, w := newContext(http.MethodGet, "/users?role=viewer&page_size=1", "")
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bob@site.io"`)
	assert.NotContains(t, w.Body.String(), `"zed@site.io"`)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		svc := userMock.NewMockService(gomock.NewController(t))
		h := user.NewHandler(svc, zap.NewNop())
		svc.EXPECT().Create(gomock.Any(), "company-1", gomock.Any()).Return(user.UserResponse{ID: "u1", Role: "ACCOUNTANT"}, nil)

		c, w := newContext(http.MethodPost, "/users", `{"name":"Acc","email":"acc@site.io","password":"password123","role":"ACCOUNTANT"}`)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := userMock.NewMockService(gomock.NewController(t))
		h := user.NewHandler(svc, zap.NewNop())
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(user.UserResponse{}, usererrors.ErrUserAlreadyExists)

		c, w := newContext(http.MethodPost, "/users", `{"name":"Acc","email":"acc@site.io","password":"password123","role":"ACCOUNTANT"}`)
		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "USER_EXISTS")
	})

	t.Run("short password", func(t *testing.T) {
		h := user.NewHandler(userMock.NewMockService(gomock.NewController(t)), zap.NewNop())

		c, w := newContext(http.MethodPost, "/users", `{"name":"Acc","email":"acc@site.io","password":"short","role":"ACCOUNTANT"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := userMock.NewMockService(gomock.NewController(t))
	h := user.NewHandler(svc, zap.NewNop())

	svc.EXPECT().ToggleStatus(gomock.Any(), "company-1", "actor-1", "target-1", false).Return(nil)

	c, w := newContext(http.MethodPatch, "/users/target-1/status", `{"is_active":false}`)
	c.Params = gin.Params{{Key: "id", Value: "target-1"}}
	h.ToggleStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":false`)
}

func TestUserHandler_ChangePassword_UsesCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := userMock.NewMockService(gomock.NewController(t))
	h := user.NewHandler(svc, zap.NewNop())

	svc.EXPECT().ChangePassword(gomock.Any(), "company-1", "actor-1", "old-password", "new-password").
		Return(usererrors.ErrWrongPassword)

	c, w := newContext(http.MethodPost, "/users/me/password", `{"current_password":"old-password","new_password":"new-password"}`)
	h.ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
