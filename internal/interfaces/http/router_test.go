package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/application/testutil"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/infrastructure/config"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/biztime"
	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
	"github.com/talento-hq/talento/internal/testdata"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{
			Mode:           gin.TestMode,
			ClientOrigin:   "http://localhost:5173",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Database: sharedConfig.DatabaseConfig{Driver: "sqlite"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4, MinLength: 6},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", ExpDays: 1},
		},
		Payment: sharedConfig.PaymentConfig{
			Gateway:                   "mock",
			Currency:                  "USD",
			SuccessPath:               "/payment/success",
			CancelPath:                "/payment/cancel",
			PendingCheckoutTTLMinutes: 60,
		},
		Metrics: sharedConfig.MetricsConfig{Path: "/metrics"},
	}
}

type routerFixture struct {
	store  *testutil.Store
	router *Router
}

func newRouterFixture(t *testing.T, cfg *config.Config) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := testutil.NewStore(t)
	router, err := NewRouter(store.DB, cfg, store.Logger)
	require.NoError(t, err)
	t.Cleanup(router.Shutdown)
	router.SetupRoutes()

	return &routerFixture{store: store, router: router}
}

func (f *routerFixture) token(t *testing.T, a *account.Account) string {
	t.Helper()
	token, _, err := f.router.jwtSvc.Generate(a.SID())
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.GetEngine().ServeHTTP(w, req)
	return w
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	f.store.CreatePlan(t, testdata.PlanOptions{Quota: 5})

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/plans", "", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/settings/public", "", nil).Code)

	// metrics are off in the default test config
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/metrics", "", nil).Code)
}

func TestRouter_Authentication(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	member := f.store.CreateMember(t, f.store.CreatePlan(t, testdata.PlanOptions{Quota: 5}))

	expired := func() string {
		restore := biztime.SetClock(func() time.Time { return time.Now().Add(-72 * time.Hour) })
		defer restore()
		return f.token(t, member)
	}()

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"malformed token", "not-a-jwt", http.StatusUnauthorized},
		{"expired token", expired, http.StatusUnauthorized},
		{"valid token", f.token(t, member), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodGet, "/api/auth/me", tt.token, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestRouter_RoleIsReadFromStorage(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	member := f.store.CreateMember(t, f.store.CreatePlan(t, testdata.PlanOptions{Quota: 5}))
	token := f.token(t, member)

	w := f.do(http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, f.store.Accounts.UpdateRole(context.Background(), member.ID(), authorization.RoleSuperAdmin))

	// Same token, promoted account.
	w = f.do(http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, f.store.Accounts.UpdateRole(context.Background(), member.ID(), authorization.RoleMember))

	w = f.do(http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_InterviewQuota(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	member := f.store.CreateMember(t, f.store.CreatePlan(t, testdata.PlanOptions{Quota: 1}))
	token := f.token(t, member)

	w := f.do(http.MethodPost, "/api/interviews", token, map[string]any{"jobTitle": "Backend Engineer"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodPost, "/api/interviews", token, map[string]any{"jobTitle": "Data Engineer"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "QuotaExceeded", decodeCode(t, w))

	assert.Equal(t, 1, f.store.Reload(t, member).InterviewsUsed())

	w = f.do(http.MethodGet, "/api/interviews", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminRoutesRejectMembers(t *testing.T) {
	f := newRouterFixture(t, testConfig())
	member := f.store.CreateMember(t, nil)
	admin := f.store.CreateAdmin(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/plans"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, "/api/admin/payments/pending"},
		{http.MethodGet, "/api/admin/settings"},
	}

	for _, p := range paths {
		t.Run(p.path, func(t *testing.T) {
			assert.Equal(t, http.StatusForbidden, f.do(p.method, p.path, f.token(t, member), nil).Code)
			assert.Equal(t, http.StatusOK, f.do(p.method, p.path, f.token(t, admin), nil).Code)
		})
	}
}

func TestRouter_RedisBackedRateLimitAndMetrics(t *testing.T) {
	mr := miniredis.RunT(t)
	host, portStr, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Redis = sharedConfig.RedisConfig{Enabled: true, Host: host, Port: port}
	cfg.RateLimit = sharedConfig.RateLimitConfig{Enabled: true, AuthPerMinute: 2, AuthPerHour: 100, WebhookPerMinute: 10}
	cfg.Metrics.Enabled = true

	f := newRouterFixture(t, cfg)

	login := map[string]any{"email": "nobody@example.com", "password": "wrong-password"}
	for i := 0; i < 2; i++ {
		w := f.do(http.MethodPost, "/api/auth/login", "", login)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := f.do(http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "redis")

	w = f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "talento_http_requests_total")
}
