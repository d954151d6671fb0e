package job_test

import (
	"testing"
	"time"

	"hiring/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter_Normalizes(t *testing.T) {
	f := job.NewFilter("  react ", "ALL", " ")

	assert.Equal(t, job.Filter{Search: "react"}, f)
	assert.False(t, f.IsEmpty())
	assert.True(t, job.NewFilter("", "all", "All").IsEmpty())
}

func TestFilter_Matches(t *testing.T) {
	d := validDetails()
	d.Title = "Senior Frontend Developer"
	d.Location = "Bangalore / Remote"
	d.Category = "engineering"
	d.Requirements = "React, TypeScript"
	j, err := job.NewJob(d, 0, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter job.Filter
		want   bool
	}{
		{"empty filter", job.NewFilter("", "", ""), true},
		{"search in title ignores case", job.NewFilter("frontend", "", ""), true},
		{"search in requirements", job.NewFilter("typescript", "", ""), true},
		{"search misses", job.NewFilter("python", "", ""), false},
		{"category exact", job.NewFilter("", "engineering", ""), true},
		{"category is case sensitive", job.NewFilter("", "Engineering", ""), false},
		{"location substring ignores case", job.NewFilter("", "", "remote"), true},
		{"location misses", job.NewFilter("", "", "Pune"), false},
		{"all criteria combine with AND", job.NewFilter("react", "engineering", "bangalore"), true},
		{"one failing criterion rejects", job.NewFilter("react", "design", "bangalore"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(j))
		})
	}
}

func TestLocationKey(t *testing.T) {
	tests := map[string]string{
		"Remote / Pune":      "remote-/-pune",
		"Bangalore / Remote": "bangalore-/-remote",
		"Pune":               "pune",
		"Hyderabad / Hybrid": "hyderabad-/-hybrid",
		"":                   "",
	}

	for in, want := range tests {
		assert.Equal(t, want, job.LocationKey(in), in)
	}
}
