package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwandapathways/pathways-api/api"
	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
	"github.com/rwandapathways/pathways-api/session"
)

func newGuard(t *testing.T) *api.Guard {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	users := databases.NewMemoryUserDatabase(databases.NewMemoryStore(0).Seed())
	return api.NewGuard(ctx, users, session.PlaceholderPolicy{}, session.NewCookieStore("test-secret", false))
}

func whoAmI(w http.ResponseWriter, r *http.Request) {
	u, ok := api.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	io.WriteString(w, u.ID)
}

func TestHealthCheckHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	api.HealthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"alive": true}`, rr.Body.String())
}

func TestNotFoundHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	api.NotFoundHandler(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"response": "not found, no route matches the request"}`, rr.Body.String())
}

func TestGuard_RejectsAnonymous(t *testing.T) {
	g := newGuard(t)
	h := g.SessionMiddleware(g.Middleware(http.HandlerFunc(whoAmI)))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, `{"error": "unauthorized"}`, rr.Body.String())
}

func TestGuard_BasicAuth(t *testing.T) {
	g := newGuard(t)
	h := g.SessionMiddleware(g.Middleware(http.HandlerFunc(whoAmI)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
	req.SetBasicAuth("counselor@ur.ac.rw", "anything")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "3", rr.Body.String())
}

func TestGuard_BearerTokenLifecycle(t *testing.T) {
	g := newGuard(t)
	h := g.SessionMiddleware(g.Middleware(http.HandlerFunc(whoAmI)))

	token, err := g.IssueToken(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil),
		&models.User{ID: "2", Email: "student@example.com", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Body.String())

	require.NoError(t, g.RevokeToken(req))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGuard_SessionCookie(t *testing.T) {
	g := newGuard(t)

	login := g.SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, ok := session.FromContext(r.Context())
		require.True(t, ok)
		_, err := m.Login(r.Context(), "admin@rwandapathways.com", "pw")
		require.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	login.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	h := g.SessionMiddleware(g.Middleware(api.AdminOnly(http.HandlerFunc(whoAmI))))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/institutions", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1", rr.Body.String())
}

func TestAdminOnly(t *testing.T) {
	h := api.AdminOnly(http.HandlerFunc(whoAmI))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/institutions", nil)
	req = req.WithContext(api.WithUser(req.Context(), &models.User{ID: "2", Role: models.RoleStudent}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/institutions", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestTimeoutMiddleware(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	h := api.TimeoutMiddleware(20 * time.Millisecond)(slow)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/institutions", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "Request timeout")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestMetrics(t *testing.T) {
	m := api.NewMetrics()
	r := mux.NewRouter()
	r.Use(m.Middleware)
	r.HandleFunc("/api/v1/institutions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/institutions/"+id, nil))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(body,
		`pathways_http_requests_total{code="404",method="GET",route="/api/v1/institutions/{id}"} 2`), body)
}
