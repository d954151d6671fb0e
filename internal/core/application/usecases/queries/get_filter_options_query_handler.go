package queries

import (
	"context"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/core/ports"
)

type GetFilterOptionsQueryHandler struct {
	repo ports.JobRepository
}

func NewGetFilterOptionsQueryHandler(repo ports.JobRepository) GetFilterOptionsQueryHandler {
	return GetFilterOptionsQueryHandler{repo: repo}
}

// Handle counts jobs per category and keys every location.
// A stored location whose key is "all" or "remote" replaces the fixed label.
func (h GetFilterOptionsQueryHandler) Handle(ctx context.Context, query GetFilterOptionsQuery) (FilterOptions, error) {
	if err := query.Validate(); err != nil {
		return FilterOptions{}, err
	}

	all, err := h.repo.FindAll(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	categories, err := h.repo.FindAllCategories(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	options := FilterOptions{
		Categories: map[string]int{job.AnyValue: len(all)},
		Locations: map[string]string{
			job.AnyValue: AllLocationsLabel,
			RemoteKey:    RemoteLabel,
		},
	}

	for _, category := range categories {
		if category == "" {
			continue
		}
		inCategory, findErr := h.repo.FindByCategory(ctx, category)
		if findErr != nil {
			return FilterOptions{}, findErr
		}
		options.Categories[category] = len(inCategory)
	}

	locations, err := h.repo.FindAllLocations(ctx)
	if err != nil {
		return FilterOptions{}, err
	}
	for _, location := range locations {
		if location == "" {
			continue
		}
		options.Locations[job.LocationKey(location)] = location
	}

	return options, nil
}
