package servers

import (
	"context"
	"fmt"
	"net/http"

	"hiring/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Exchange admin credentials for a token
	// (POST /api/v1/admin/login)
	AdminLogin(ctx echo.Context) error
	// List jobs, optionally filtered
	// (GET /api/v1/jobs)
	ListJobs(ctx echo.Context, params ListJobsParams) error
	// Create a job
	// (POST /api/v1/jobs)
	CreateJob(ctx echo.Context) error
	// List jobs of one category
	// (GET /api/v1/jobs/category/{category})
	ListJobsByCategory(ctx echo.Context, category string) error
	// List featured jobs
	// (GET /api/v1/jobs/featured)
	ListFeaturedJobs(ctx echo.Context) error
	// Filter choices with counts
	// (GET /api/v1/jobs/filters)
	GetJobFilters(ctx echo.Context) error
	// List jobs by location fragment
	// (GET /api/v1/jobs/location/{location})
	ListJobsByLocation(ctx echo.Context, location string) error
	// Delete a job
	// (DELETE /api/v1/jobs/{id})
	DeleteJob(ctx echo.Context, id int64) error
	// Get a job
	// (GET /api/v1/jobs/{id})
	GetJob(ctx echo.Context, id int64) error
	// Update a job
	// (PUT /api/v1/jobs/{id})
	UpdateJob(ctx echo.Context, id int64) error
	// Liveness and database availability
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// AdminLogin converts echo context to params.
func (w *ServerInterfaceWrapper) AdminLogin(ctx echo.Context) error {
	return w.Handler.AdminLogin(ctx)
}

// ListJobs converts echo context to params.
func (w *ServerInterfaceWrapper) ListJobs(ctx echo.Context) error {
	var err error

	var params ListJobsParams

	// ------------- Optional query parameter "search" -------------
	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "category" -------------
	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// ------------- Optional query parameter "location" -------------
	err = runtime.BindQueryParameter("form", true, false, "location", ctx.QueryParams(), &params.Location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter location: %s", err))
	}

	return w.Handler.ListJobs(ctx, params)
}

// CreateJob converts echo context to params.
func (w *ServerInterfaceWrapper) CreateJob(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateJob(ctx)
}

// ListJobsByCategory converts echo context to params.
func (w *ServerInterfaceWrapper) ListJobsByCategory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "category" -------------
	var category string

	err = runtime.BindStyledParameterWithOptions("simple", "category", ctx.Param("category"), &category,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	return w.Handler.ListJobsByCategory(ctx, category)
}

// ListFeaturedJobs converts echo context to params.
func (w *ServerInterfaceWrapper) ListFeaturedJobs(ctx echo.Context) error {
	return w.Handler.ListFeaturedJobs(ctx)
}

// GetJobFilters converts echo context to params.
func (w *ServerInterfaceWrapper) GetJobFilters(ctx echo.Context) error {
	return w.Handler.GetJobFilters(ctx)
}

// ListJobsByLocation converts echo context to params.
func (w *ServerInterfaceWrapper) ListJobsByLocation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "location" -------------
	var location string

	err = runtime.BindStyledParameterWithOptions("simple", "location", ctx.Param("location"), &location,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter location: %s", err))
	}

	return w.Handler.ListJobsByLocation(ctx, location)
}

// DeleteJob converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteJob(ctx echo.Context) error {
	id, err := bindJobID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeleteJob(ctx, id)
}

// GetJob converts echo context to params.
func (w *ServerInterfaceWrapper) GetJob(ctx echo.Context) error {
	id, err := bindJobID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetJob(ctx, id)
}

// UpdateJob converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateJob(ctx echo.Context) error {
	id, err := bindJobID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateJob(ctx, id)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func bindJobID(ctx echo.Context) (int64, error) {
	// ------------- Path parameter "id" -------------
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/admin/login", wrapper.AdminLogin)
	router.GET(baseURL+"/api/v1/jobs", wrapper.ListJobs)
	router.POST(baseURL+"/api/v1/jobs", wrapper.CreateJob)
	router.GET(baseURL+"/api/v1/jobs/category/:category", wrapper.ListJobsByCategory)
	router.GET(baseURL+"/api/v1/jobs/featured", wrapper.ListFeaturedJobs)
	router.GET(baseURL+"/api/v1/jobs/filters", wrapper.GetJobFilters)
	router.GET(baseURL+"/api/v1/jobs/location/:location", wrapper.ListJobsByLocation)
	router.DELETE(baseURL+"/api/v1/jobs/:id", wrapper.DeleteJob)
	router.GET(baseURL+"/api/v1/jobs/:id", wrapper.GetJob)
	router.PUT(baseURL+"/api/v1/jobs/:id", wrapper.UpdateJob)
	router.GET(baseURL+"/health", wrapper.GetHealth)
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return swagger, nil
}
