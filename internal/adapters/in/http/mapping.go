package http

import (
	"hiring/internal/core/domain/model/job"
	"hiring/internal/openapi/servers"
)

func toJob(j *job.Job) servers.Job {
	var category *string
	if c := j.Category(); c != "" {
		category = &c
	}

	return servers.Job{
		Id:           int64(j.ID()),
		Title:        j.Title(),
		Department:   j.Department(),
		Location:     j.Location(),
		Type:         j.EmploymentType(),
		Experience:   j.Experience(),
		Salary:       j.Salary(),
		Category:     category,
		Description:  j.Description(),
		Requirements: j.Requirements(),
		Posted:       j.Posted(),
		Applicants:   j.Applicants(),
		Featured:     j.Featured(),
		CreatedAt:    j.CreatedAt(),
		UpdatedAt:    j.UpdatedAt(),
	}
}

func toJobs(jobs []*job.Job) []servers.Job {
	response := make([]servers.Job, len(jobs))
	for i, j := range jobs {
		response[i] = toJob(j)
	}
	return response
}

// toDetails maps a request body; absent optional fields become zero values.
func toDetails(in servers.JobInput) job.Details {
	return job.Details{
		Title:          in.Title,
		Department:     deref(in.Department),
		Location:       deref(in.Location),
		EmploymentType: deref(in.Type),
		Experience:     deref(in.Experience),
		Salary:         deref(in.Salary),
		Category:       deref(in.Category),
		Description:    deref(in.Description),
		Requirements:   deref(in.Requirements),
		Posted:         in.Posted != nil && *in.Posted,
		Featured:       in.Featured != nil && *in.Featured,
	}
}
