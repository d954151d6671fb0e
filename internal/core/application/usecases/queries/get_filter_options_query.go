package queries

import (
	"errors"

	"hiring/internal/pkg/guard"
)

var ErrGetFilterOptionsQueryIsNotConstructed = errors.New(
	"GetFilterOptionsQuery must be created via NewGetFilterOptionsQuery constructor",
)

const (
	AllLocationsLabel = "All Locations"
	RemoteKey         = "remote"
	RemoteLabel       = "Remote"
)

// GetFilterOptionsQuery builds the choices a client offers in its filter controls.
type GetFilterOptionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFilterOptionsQuery() GetFilterOptionsQuery {
	return GetFilterOptionsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFilterOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetFilterOptionsQueryIsNotConstructed)
}

// FilterOptions is the read model of GetFilterOptionsQuery.
//
//	{
//	  "categories": {"all": 5, "engineering": 2, ...},
//	  "locations":  {"all": "All Locations", "remote": "Remote", "remote-/-pune": "Remote / Pune", ...}
//	}
type FilterOptions struct {
	// Categories maps each category in use to its number of jobs; "all" holds the total.
	Categories map[string]int `json:"categories"`
	// Locations maps a location key to the location as stored.
	Locations map[string]string `json:"locations"`
}
