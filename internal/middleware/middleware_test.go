package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-sitebooks/internal/auth/token"
	"go-sitebooks/internal/domain"
	"go-sitebooks/internal/middleware"
	"go-sitebooks/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "mw-secret"

func signed(t *testing.T, typ string) string {
	t.Helper()
	raw, err := token.Sign([]byte(secret), token.Subject{UserID: "u1", CompanyID: "c1", Role: domain.RoleOwner}, typ, time.Minute, time.Now())
	require.NoError(t, err)
	return raw
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", secret)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id")+"|"+c.GetString("company_id")+"|"+c.GetString("role"))
	})

	t.Run("bearer access token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, token.TypeAccess))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1|c1|OWNER", w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signed(t, token.TypeAccess)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, token.TypeRefresh))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("expired token", func(t *testing.T) {
		raw, err := token.Sign([]byte(secret), token.Subject{UserID: "u1", CompanyID: "c1"}, token.TypeAccess, time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})
}

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func withIdentity(c *gin.Context) {
	c.Set("user_id", "u1")
	c.Set("company_id", "c1")
	c.Next()
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		fake   *fakeEnforcer
		status int
	}{
		{"allowed", &fakeEnforcer{allowed: true}, http.StatusOK},
		{"denied", &fakeEnforcer{allowed: false}, http.StatusForbidden},
		{"enforcer error", &fakeEnforcer{err: errors.New("boom")}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/projects", withIdentity, middleware.RBACAuthorize(tc.fake, "project", "read"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects", nil))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, domain.EnforceRequest{UserID: "u1", CompanyID: "c1", Resource: "project", Action: "read"}, tc.fake.got)
		})
	}

	t.Run("missing identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/projects", middleware.RBACAuthorize(&fakeEnforcer{allowed: true}, "project", "read"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { c.Set("role", domain.RoleViewer); c.Next() },
		middleware.RoleMiddleware(domain.RoleOwner), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", withIdentity, middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestContextLogger_PropagatesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var rid, cid string
	r.GET("/x", withIdentity, middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
		rid = contextutil.GetRequestID(c.Request.Context())
		cid = contextutil.GetCompanyID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", rid)
	assert.Equal(t, "c1", cid)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	called := false
	r := gin.New()
	r.POST("/purchases", withIdentity, middleware.Idempotency(rdb), func(c *gin.Context) {
		called = true
		c.Status(http.StatusCreated)
	})

	mock.ExpectGet("idemp:/purchases:u1:key-1").SetVal(`{"ok":true,"data":{"id":"p1"}}`)

	req := httptest.NewRequest(http.MethodPost, "/purchases", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
	assert.Contains(t, w.Body.String(), `"id":"p1"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/purchases", withIdentity, middleware.Idempotency(rdb), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	mock.ExpectGet("idemp:/purchases:u1:key-2").RedisNil()
	mock.ExpectSetNX("idemp:/purchases:u1:key-2:lock", "locked", 30*time.Second).SetVal(false)

	req := httptest.NewRequest(http.MethodPost, "/purchases", nil)
	req.Header.Set("Idempotency-Key", "key-2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
