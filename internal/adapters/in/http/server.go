// Package http is the REST adapter of the hiring backend. Server implements
// servers.ServerInterface on top of the job service; NewRouter wires it into
// echo with CORS, request ids, request logging and admin token checks.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"hiring/internal/core/application/usecases/queries"
	"hiring/internal/core/domain/model/job"
	"hiring/internal/openapi/servers"
	"hiring/internal/pkg/auth"
	"hiring/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// JobService is the application facade the handlers call.
type JobService interface {
	ListAll(ctx context.Context) ([]*job.Job, error)
	ListFeatured(ctx context.Context) ([]*job.Job, error)
	ListByCategory(ctx context.Context, category string) ([]*job.Job, error)
	ListByLocation(ctx context.Context, fragment string) ([]*job.Job, error)
	Search(ctx context.Context, search, category, location string) ([]*job.Job, error)
	GetByID(ctx context.Context, id job.ID) (*job.Job, error)
	Create(ctx context.Context, details job.Details, applicants int) (*job.Job, error)
	Update(ctx context.Context, id job.ID, details job.Details) (*job.Job, error)
	Delete(ctx context.Context, id job.ID) error
	GetFilterOptions(ctx context.Context) (queries.FilterOptions, error)
}

// Authenticator checks admin credentials and tokens.
type Authenticator interface {
	Enabled() bool
	Login(username, password string) (string, time.Time, error)
	Authorize(token string) (auth.Claims, error)
}

// AvailabilityChecker reports whether the database answers.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) bool
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
type Server struct {
	jobs   JobService
	auth   Authenticator
	health AvailabilityChecker
}

// NewServer creates the handler set. health may be nil when no database is used.
func NewServer(jobs JobService, authenticator Authenticator, health AvailabilityChecker) *Server {
	return &Server{
		jobs:   jobs,
		auth:   authenticator,
		health: health,
	}
}

// ListJobs handles GET /api/v1/jobs.
func (s *Server) ListJobs(ctx echo.Context, params servers.ListJobsParams) error {
	search, category, location := deref(params.Search), deref(params.Category), deref(params.Location)

	var (
		jobs []*job.Job
		err  error
	)
	if job.NewFilter(search, category, location).IsEmpty() {
		jobs, err = s.jobs.ListAll(ctx.Request().Context())
	} else {
		jobs, err = s.jobs.Search(ctx.Request().Context(), search, category, location)
	}
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve jobs")
	}

	return ctx.JSON(http.StatusOK, toJobs(jobs))
}

// ListFeaturedJobs handles GET /api/v1/jobs/featured.
func (s *Server) ListFeaturedJobs(ctx echo.Context) error {
	jobs, err := s.jobs.ListFeatured(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve featured jobs")
	}
	return ctx.JSON(http.StatusOK, toJobs(jobs))
}

// GetJobFilters handles GET /api/v1/jobs/filters.
func (s *Server) GetJobFilters(ctx echo.Context) error {
	options, err := s.jobs.GetFilterOptions(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve job filters")
	}
	return ctx.JSON(http.StatusOK, servers.FilterOptions{
		Categories: options.Categories,
		Locations:  options.Locations,
	})
}

// ListJobsByCategory handles GET /api/v1/jobs/category/{category}.
func (s *Server) ListJobsByCategory(ctx echo.Context, category string) error {
	jobs, err := s.jobs.ListByCategory(ctx.Request().Context(), category)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve jobs")
	}
	return ctx.JSON(http.StatusOK, toJobs(jobs))
}

// ListJobsByLocation handles GET /api/v1/jobs/location/{location}.
func (s *Server) ListJobsByLocation(ctx echo.Context, location string) error {
	jobs, err := s.jobs.ListByLocation(ctx.Request().Context(), location)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve jobs")
	}
	return ctx.JSON(http.StatusOK, toJobs(jobs))
}

// GetJob handles GET /api/v1/jobs/{id}.
func (s *Server) GetJob(ctx echo.Context, id int64) error {
	if id <= 0 {
		return jobNotFound(ctx, id)
	}

	found, err := s.jobs.GetByID(ctx.Request().Context(), job.ID(id))
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve job")
	}
	if found == nil {
		return jobNotFound(ctx, id)
	}

	return ctx.JSON(http.StatusOK, toJob(found))
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body servers.CreateJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	applicants := 0
	if body.Applicants != nil {
		applicants = *body.Applicants
	}

	created, err := s.jobs.Create(ctx.Request().Context(), toDetails(body), applicants)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create job")
	}

	return ctx.JSON(http.StatusCreated, toJob(created))
}

// UpdateJob handles PUT /api/v1/jobs/{id}.
func (s *Server) UpdateJob(ctx echo.Context, id int64) error {
	var body servers.UpdateJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if id <= 0 {
		return jobNotFound(ctx, id)
	}

	updated, err := s.jobs.Update(ctx.Request().Context(), job.ID(id), toDetails(body))
	if err != nil {
		return errorResponse(ctx, err, "Failed to update job")
	}
	if updated == nil {
		return jobNotFound(ctx, id)
	}

	return ctx.JSON(http.StatusOK, toJob(updated))
}

// DeleteJob handles DELETE /api/v1/jobs/{id}. Unknown ids succeed.
func (s *Server) DeleteJob(ctx echo.Context, id int64) error {
	if id > 0 {
		if err := s.jobs.Delete(ctx.Request().Context(), job.ID(id)); err != nil {
			return errorResponse(ctx, err, "Failed to delete job")
		}
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdminLogin handles POST /api/v1/admin/login.
func (s *Server) AdminLogin(ctx echo.Context) error {
	var body servers.AdminLoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if s.auth == nil || !s.auth.Enabled() {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Admin login is not configured",
		})
	}

	token, expiresAt, err := s.auth.Login(body.Username, body.Password)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	if s.health == nil {
		return ctx.JSON(http.StatusOK, servers.Health{Status: "ok", Database: servers.HealthDatabaseDisabled})
	}
	if !s.health.IsAvailable(ctx.Request().Context()) {
		return ctx.JSON(http.StatusServiceUnavailable, servers.Health{Status: "degraded", Database: servers.HealthDatabaseDown})
	}
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok", Database: servers.HealthDatabaseUp})
}

func jobNotFound(ctx echo.Context, id int64) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: errs.NewObjectNotFoundError("job", id).Error(),
	})
}

// errorResponse maps validation failures to 400 and everything else to 500
// with a generic message.
func errorResponse(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: strings.ReplaceAll(err.Error(), "\n", "; "),
		})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
