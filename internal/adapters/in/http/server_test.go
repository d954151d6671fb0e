package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "hiring/internal/adapters/in/http"
	"hiring/internal/adapters/out/memory"
	"hiring/internal/core/application/services"
	"hiring/internal/core/application/usecases/commands"
	"hiring/internal/core/application/usecases/queries"
	"hiring/internal/openapi/servers"
	"hiring/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type jobUoWFactory func() commands.JobUoW

func (f jobUoWFactory) Create() commands.JobUoW { return f() }

type stubChecker bool

func (c stubChecker) IsAvailable(context.Context) bool { return bool(c) }

func newService(t *testing.T) *services.JobService {
	t.Helper()

	uows := memory.NewUnitOfWorkFactory(memory.NewStore())
	factory := jobUoWFactory(func() commands.JobUoW { return uows.Create() })
	clock := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	repo := uows.Create().JobRepository()

	service := services.NewJobService(services.Handlers{
		CreateJob:        commands.NewCreateJobCommandHandler(factory, nil, clock, nil),
		UpdateJob:        commands.NewUpdateJobCommandHandler(factory),
		DeleteJob:        commands.NewDeleteJobCommandHandler(factory),
		SeedJobs:         commands.NewSeedDefaultJobsCommandHandler(factory, clock, nil),
		ListJobs:         queries.NewListJobsQueryHandler(repo),
		GetJob:           queries.NewGetJobQueryHandler(repo),
		GetFilterOptions: queries.NewGetFilterOptionsQueryHandler(repo),
	}, nil)
	require.NoError(t, service.SeedIfEmpty(context.Background()))
	return service
}

func newAuthenticator(t *testing.T) *auth.AdminAuthenticator {
	t.Helper()

	encoder := auth.NewPasswordEncoder(bcrypt.MinCost)
	hash, err := encoder.Encode("s3cret")
	require.NoError(t, err)
	return auth.NewAdminAuthenticator("admin", hash, encoder, auth.NewTokenService("test-secret", time.Hour))
}

func newRouter(t *testing.T, authenticator httpadapter.Authenticator, health httpadapter.AvailabilityChecker) *echo.Echo {
	t.Helper()

	server := httpadapter.NewServer(newService(t), authenticator, health)
	e, err := httpadapter.NewRouter(httpadapter.RouterConfig{}, server)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func titles(jobs []servers.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestServer_ListJobs(t *testing.T) {
	e := newRouter(t, nil, nil)

	t.Run("all", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]servers.Job](t, rec), 5)
	})

	t.Run("all category means no filter", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs?category=all&location=all", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]servers.Job](t, rec), 5)
	})

	t.Run("filtered", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs?category=engineering&location=pune", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Backend Engineer"}, titles(decode[[]servers.Job](t, rec)))
	})

	t.Run("search", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs?search=scientist", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Data Scientist"}, titles(decode[[]servers.Job](t, rec)))
	})

	t.Run("featured", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs/featured", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t,
			[]string{"Senior Frontend Developer", "Product Manager", "Data Scientist"},
			titles(decode[[]servers.Job](t, rec)))
	})

	t.Run("by category", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs/category/engineering", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t,
			[]string{"Senior Frontend Developer", "Backend Engineer"},
			titles(decode[[]servers.Job](t, rec)))
	})

	t.Run("by location", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs/location/REMOTE", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t,
			[]string{"Senior Frontend Developer", "Data Scientist"},
			titles(decode[[]servers.Job](t, rec)))
	})
}

func TestServer_GetJobFilters(t *testing.T) {
	e := newRouter(t, nil, nil)

	rec := do(e, http.MethodGet, "/api/v1/jobs/filters", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	options := decode[servers.FilterOptions](t, rec)
	assert.Equal(t, 5, options.Categories["all"])
	assert.Equal(t, 2, options.Categories["engineering"])
	assert.Equal(t, "Remote / Pune", options.Locations["remote-/-pune"])
	assert.Equal(t, "Remote", options.Locations["remote"])
}

func TestServer_GetJob(t *testing.T) {
	e := newRouter(t, nil, nil)

	rec := do(e, http.MethodGet, "/api/v1/jobs/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[servers.Job](t, rec)
	assert.Equal(t, int64(1), found.Id)
	assert.Equal(t, "Senior Frontend Developer", found.Title)
	require.NotNil(t, found.Category)
	assert.Equal(t, "engineering", *found.Category)

	rec = do(e, http.MethodGet, "/api/v1/jobs/999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, servers.Error{Code: http.StatusNotFound, Message: "object not found: 999"}, decode[servers.Error](t, rec))

	rec = do(e, http.MethodGet, "/api/v1/jobs/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decode[servers.Error](t, rec).Code)
}

func TestServer_WriteOperations(t *testing.T) {
	e := newRouter(t, nil, nil)

	rec := do(e, http.MethodPost, "/api/v1/jobs", `{"title":"Site Reliability Engineer","location":"Chennai","category":"engineering"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[servers.Job](t, rec)
	assert.Equal(t, int64(6), created.Id)
	assert.Equal(t, 0, created.Applicants)
	assert.False(t, created.Featured)

	rec = do(e, http.MethodPost, "/api/v1/jobs", `{"title":"  "}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/jobs", `{"title":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPut, "/api/v1/jobs/6", `{"title":"SRE","featured":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[servers.Job](t, rec)
	assert.Equal(t, "SRE", updated.Title)
	assert.True(t, updated.Featured)
	assert.Nil(t, updated.Category)

	rec = do(e, http.MethodPut, "/api/v1/jobs/999", `{"title":"Ghost"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "object not found: 999", decode[servers.Error](t, rec).Message)

	rec = do(e, http.MethodDelete, "/api/v1/jobs/6", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodDelete, "/api/v1/jobs/6", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/jobs/6", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_AdminAuth(t *testing.T) {
	e := newRouter(t, newAuthenticator(t), nil)
	body := `{"title":"Platform Engineer"}`

	rec := do(e, http.MethodPost, "/api/v1/jobs", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/jobs", body, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/jobs", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[servers.LoginResponse](t, rec)
	assert.Equal(t, "Bearer", login.TokenType)
	require.NotEmpty(t, login.Token)

	rec = do(e, http.MethodPost, "/api/v1/jobs", body, login.Token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodDelete, "/api/v1/jobs/1", "", login.Token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_AdminLoginDisabled(t *testing.T) {
	e := newRouter(t, nil, nil)

	rec := do(e, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"s3cret"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetHealth(t *testing.T) {
	tests := []struct {
		name     string
		checker  httpadapter.AvailabilityChecker
		code     int
		database servers.HealthDatabase
	}{
		{"no database", nil, http.StatusOK, servers.HealthDatabaseDisabled},
		{"database up", stubChecker(true), http.StatusOK, servers.HealthDatabaseUp},
		{"database down", stubChecker(false), http.StatusServiceUnavailable, servers.HealthDatabaseDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRouter(t, nil, tt.checker)

			rec := do(e, http.MethodGet, "/health", "", "")
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.database, decode[servers.Health](t, rec).Database)
		})
	}
}

func TestRouter_Middleware(t *testing.T) {
	e := newRouter(t, nil, nil)

	t.Run("request id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/jobs", "", "")
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
		assert.Equal(t, "3600", rec.Header().Get(echo.HeaderAccessControlMaxAge))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/nothing", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, decode[servers.Error](t, rec).Code)
	})

	t.Run("openapi document", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/openapi.json", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		doc := decode[map[string]any](t, rec)
		assert.Equal(t, "3.0.3", doc["openapi"])
	})
}
