// Package queries contains read operations over job listings.
// Query handlers read through ports.JobRepository without opening a transaction.
package queries

import (
	"errors"
	"strings"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"
	"hiring/internal/pkg/guard"
)

var ErrListJobsQueryIsNotConstructed = errors.New(
	"ListJobsQuery must be created via one of the NewList*JobsQuery constructors",
)

// Scope selects which listings a ListJobsQuery returns.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeFeatured
	ScopeCategory
	ScopeLocation
	ScopeSearch
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeFeatured:
		return "featured"
	case ScopeCategory:
		return "category"
	case ScopeLocation:
		return "location"
	case ScopeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// ListJobsQuery retrieves a list of jobs narrowed by its scope.
//
// Example:
//
//	query := NewSearchJobsQuery("engineer", "all", "pune")
//	jobs, err := handler.Handle(ctx, query)
type ListJobsQuery struct {
	scope    Scope
	category string
	location string
	filter   job.Filter

	guard guard.ConstructorGuard
}

func NewListAllJobsQuery() ListJobsQuery {
	return ListJobsQuery{scope: ScopeAll, guard: guard.NewConstructorGuard()}
}

func NewListFeaturedJobsQuery() ListJobsQuery {
	return ListJobsQuery{scope: ScopeFeatured, guard: guard.NewConstructorGuard()}
}

// NewListJobsByCategoryQuery matches the category exactly, so it must not be blank.
func NewListJobsByCategoryQuery(category string) (ListJobsQuery, error) {
	if strings.TrimSpace(category) == "" {
		return ListJobsQuery{}, errs.NewValueIsRequiredError("category")
	}
	return ListJobsQuery{scope: ScopeCategory, category: category, guard: guard.NewConstructorGuard()}, nil
}

// NewListJobsByLocationQuery matches location fragments ignoring case.
// An empty fragment matches every job.
func NewListJobsByLocationQuery(fragment string) ListJobsQuery {
	return ListJobsQuery{scope: ScopeLocation, location: fragment, guard: guard.NewConstructorGuard()}
}

// NewSearchJobsQuery combines the criteria with AND; see job.Filter.
func NewSearchJobsQuery(search, category, location string) ListJobsQuery {
	return ListJobsQuery{
		scope:  ScopeSearch,
		filter: job.NewFilter(search, category, location),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

func (q ListJobsQuery) Scope() Scope {
	return q.scope
}

func (q ListJobsQuery) Category() string {
	return q.category
}

func (q ListJobsQuery) Location() string {
	return q.location
}

func (q ListJobsQuery) Filter() job.Filter {
	return q.filter
}
