package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-booking-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSession struct {
	authenticated bool
	admin         bool
}

func (f fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f fakeSession) IsAdmin() bool         { return f.admin }

func ok(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "page")
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.With(mw).Get(path, ok)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRequireAuth(t *testing.T) {
	log := zap.NewNop()

	rec := serve(t, RequireAuth(fakeSession{}, log), "/my-bookings")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), "Please login to continue")

	rec = serve(t, RequireAuth(fakeSession{authenticated: true}, log), "/my-bookings")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	log := zap.NewNop()

	rec := serve(t, RequireAdmin(fakeSession{}, log), "/admin/movies")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = serve(t, RequireAdmin(fakeSession{authenticated: true}, log), "/admin/movies")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), "Admin access required")

	rec = serve(t, RequireAdmin(fakeSession{authenticated: true, admin: true}, log), "/admin/movies")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicOnly(t *testing.T) {
	rec := serve(t, PublicOnly(fakeSession{authenticated: true}, zap.NewNop()), "/login")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = serve(t, PublicOnly(fakeSession{}, zap.NewNop()), "/login")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestContext(t *testing.T) {
	var output, requestID string
	r := chi.NewRouter()
	r.Use(RequestContext("table"))
	r.Get("/movies", func(w http.ResponseWriter, r *http.Request) {
		output = utils.GetOutputFromContext(r.Context())
		requestID = utils.GetRequestIDFromContext(r.Context())
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies?output=json", nil))
	assert.Equal(t, "json", output)
	assert.NotEmpty(t, requestID)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("X-Request-ID", "fixed")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "table", output)
	assert.Equal(t, "fixed", requestID)
}

func TestRecover(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Recover(zap.NewNop()), Logger(zap.NewNop()))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GET /boom failed unexpectedly")
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(RequestContext("table"), Logger(zap.New(core)))
	r.Get("/movies", ok)
	r.With(RequireAuth(fakeSession{}, zap.NewNop())).Get("/my-bookings", ok)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/my-bookings", nil))

	entries := logs.FilterMessage("Page request").All()
	assert.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "/login", entries[1].ContextMap()["location"])
}
