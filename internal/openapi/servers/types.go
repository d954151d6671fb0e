// Package servers binds the OpenAPI document in api/openapi.yaml to echo:
// wire types, the ServerInterface every handler set implements, parameter
// binding and route registration.
package servers

import (
	"time"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for HealthDatabase.
const (
	HealthDatabaseDisabled HealthDatabase = "disabled"
	HealthDatabaseDown     HealthDatabase = "down"
	HealthDatabaseUp       HealthDatabase = "up"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FilterOptions defines model for FilterOptions.
type FilterOptions struct {
	Categories map[string]int    `json:"categories"`
	Locations  map[string]string `json:"locations"`
}

// Health defines model for Health.
type Health struct {
	Database HealthDatabase `json:"database"`
	Status   string         `json:"status"`
}

// HealthDatabase defines model for Health.Database.
type HealthDatabase string

// Job defines model for Job.
type Job struct {
	Applicants   int       `json:"applicants"`
	Category     *string   `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Experience   string    `json:"experience"`
	Featured     bool      `json:"featured"`
	Id           int64     `json:"id"`
	Location     string    `json:"location"`
	Posted       bool      `json:"posted"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobInput defines model for JobInput.
type JobInput struct {
	// Applicants Initial applicant count. Ignored on update.
	Applicants   *int    `json:"applicants,omitempty"`
	Category     *string `json:"category,omitempty"`
	Department   *string `json:"department,omitempty"`
	Description  *string `json:"description,omitempty"`
	Experience   *string `json:"experience,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
	Location     *string `json:"location,omitempty"`
	Posted       *bool   `json:"posted,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Salary       *string `json:"salary,omitempty"`
	Title        string  `json:"title"`
	Type         *string `json:"type,omitempty"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginResponse defines model for LoginResponse.
type LoginResponse struct {
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
}

// ListJobsParams defines parameters for ListJobs.
type ListJobsParams struct {
	Search   *string `form:"search,omitempty" json:"search,omitempty"`
	Category *string `form:"category,omitempty" json:"category,omitempty"`
	Location *string `form:"location,omitempty" json:"location,omitempty"`
}

// CreateJobJSONRequestBody defines body for CreateJob for application/json ContentType.
type CreateJobJSONRequestBody = JobInput

// UpdateJobJSONRequestBody defines body for UpdateJob for application/json ContentType.
type UpdateJobJSONRequestBody = JobInput

// AdminLoginJSONRequestBody defines body for AdminLogin for application/json ContentType.
type AdminLoginJSONRequestBody = LoginRequest
