package job

import "strings"

// AnyValue is the filter value a client sends to disable a criterion.
const AnyValue = "all"

// Filter holds normalised search criteria. An empty field means "do not
// filter on this field"; non-empty fields combine with AND.
type Filter struct {
	// Search is matched case-insensitively against title, department,
	// description and requirements.
	Search string
	// Category must equal the job's category exactly.
	Category string
	// Location is matched case-insensitively as a substring.
	Location string
}

// NewFilter trims every criterion and turns blank values and "all" into "no filter".
func NewFilter(search, category, location string) Filter {
	return Filter{
		Search:   normalizeCriterion(search),
		Category: normalizeCriterion(category),
		Location: normalizeCriterion(location),
	}
}

// IsEmpty reports whether the filter matches every job.
func (f Filter) IsEmpty() bool {
	return f.Search == "" && f.Category == "" && f.Location == ""
}

// Matches applies the filter to a single job. Stores that cannot push the
// filter down to a query language use it directly.
func (f Filter) Matches(j *Job) bool {
	if f.Category != "" && j.Category() != f.Category {
		return false
	}
	if f.Location != "" && !ContainsFold(j.Location(), f.Location) {
		return false
	}
	if f.Search != "" &&
		!ContainsFold(j.Title(), f.Search) &&
		!ContainsFold(j.Department(), f.Search) &&
		!ContainsFold(j.Description(), f.Search) &&
		!ContainsFold(j.Requirements(), f.Search) {
		return false
	}
	return true
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// LocationKey is the key a location is listed under in filter options:
// lower-cased, spaces replaced by hyphens, everything else kept.
//
//	LocationKey("Remote / Pune") == "remote-/-pune"
func LocationKey(location string) string {
	return strings.ReplaceAll(strings.ToLower(location), " ", "-")
}

func normalizeCriterion(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, AnyValue) {
		return ""
	}
	return v
}
