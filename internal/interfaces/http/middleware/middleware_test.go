package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/infrastructure/ratelimit"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/constants"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthenticator struct {
	acc   *account.Account
	err   error
	token string
}

func (s *stubAuthenticator) Execute(_ context.Context, token string) (*account.Account, error) {
	s.token = token
	return s.acc, s.err
}

type stubEnforcer struct {
	allow map[string]bool
	err   error
}

func (s *stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	return s.allow[role+" "+action+" "+resource], s.err
}
func (s *stubEnforcer) AddPolicy(string, string, string) error           { return nil }
func (s *stubEnforcer) RemovePolicy(string, string, string) error        { return nil }
func (s *stubEnforcer) GetPermissionsForRole(string) ([][]string, error) { return nil, nil }
func (s *stubEnforcer) LoadPolicy() error                                { return nil }

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func testAccount(role authorization.UserRole) *account.Account {
	now := time.Now().UTC()
	return account.ReconstructAccount(7, "acc_test", "hr@example.com", "hash", "HR", "Acme",
		role, nil, 0, account.PaymentStatusActive, now, now)
}

func newAuthEngine(auth Authenticator, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	mw := NewAuthMiddleware(auth, logger.NewNopLogger())
	handlers := append([]gin.HandlerFunc{mw.RequireAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetUint(constants.ContextKeyUserID),
			"role": c.GetString(constants.ContextKeyUserRole),
		})
	})
	r.GET("/api/auth/me", handlers...)
	r.GET("/api/admin/dashboard", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		authErr    error
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", nil, http.StatusUnauthorized, "MissingToken"},
		{"wrong scheme", "Basic abc", nil, http.StatusUnauthorized, "InvalidToken"},
		{"empty bearer", "Bearer ", nil, http.StatusUnauthorized, "InvalidToken"},
		{"expired", "Bearer old", apperrors.NewTokenExpiredError(), http.StatusUnauthorized, "ExpiredToken"},
		{"tampered", "Bearer bad", apperrors.NewTokenInvalidError(), http.StatusUnauthorized, "InvalidToken"},
		{"storage failure", "Bearer ok", errors.New("db down"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newAuthEngine(&stubAuthenticator{err: tt.authErr})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestRequireAuth_SetsStoredRole(t *testing.T) {
	auth := &stubAuthenticator{acc: testAccount(authorization.RoleSuperAdmin)}
	engine := newAuthEngine(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "bearer  tok123 ")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok123", auth.token)
	assert.JSONEq(t, `{"id":7,"role":"superadmin"}`, w.Body.String())
}

func TestAuthorize(t *testing.T) {
	enforcer := &stubEnforcer{allow: map[string]bool{
		"member GET /api/auth/me":            true,
		"superadmin GET /api/admin/dashboard": true,
	}}
	perm := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	tests := []struct {
		name       string
		role       authorization.UserRole
		path       string
		wantStatus int
	}{
		{"member own route", authorization.RoleMember, "/api/auth/me", http.StatusOK},
		{"member admin route", authorization.RoleMember, "/api/admin/dashboard", http.StatusForbidden},
		{"admin admin route", authorization.RoleSuperAdmin, "/api/admin/dashboard", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newAuthEngine(&stubAuthenticator{acc: testAccount(tt.role)}, perm.Authorize())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer t")
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "Forbidden", decodeError(t, w).Code)
			}
		})
	}
}

func TestAuthorize_EnforcerError(t *testing.T) {
	perm := NewPermissionMiddleware(&stubEnforcer{err: errors.New("adapter closed")}, logger.NewNopLogger())
	engine := newAuthEngine(&stubAuthenticator{acc: testAccount(authorization.RoleMember)}, perm.Authorize())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer t")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireRole(t *testing.T) {
	perm := NewPermissionMiddleware(&stubEnforcer{}, logger.NewNopLogger())

	member := newAuthEngine(&stubAuthenticator{acc: testAccount(authorization.RoleMember)},
		perm.RequireRole(authorization.RoleSuperAdmin))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer t")
	member.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := newAuthEngine(&stubAuthenticator{acc: testAccount(authorization.RoleSuperAdmin)},
		perm.RequireRole(authorization.RoleSuperAdmin))
	w = httptest.NewRecorder()
	admin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	mw := NewRateLimitMiddleware(ratelimit.NewMemoryRateLimiter(), logger.NewNopLogger())
	r := gin.New()
	r.POST("/api/auth/login", mw.Limit("auth", ratelimit.RateLimitConfig{RequestsPerMinute: 2}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "RateLimited", decodeError(t, w).Code)
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		} else {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(1-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own budget
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 30, retryAfterSeconds(30*time.Second))
	assert.Equal(t, 31, retryAfterSeconds(30*time.Second+time.Millisecond))
	assert.Equal(t, 86400, retryAfterSeconds(1000*time.Hour))
}

func TestRecovery_SanitizesPanics(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) {
		panic("secret internals")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Authorization", "Bearer secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.False(t, decodeError(t, w).Success)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://app.test"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://app.test")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
