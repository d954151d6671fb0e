// Package jobrepo persists job aggregates with GORM.
package jobrepo

import (
	"time"

	"hiring/internal/core/domain/model/job"
)

// JobDTO is the row layout of the jobs table. Timestamps are written by the
// aggregate, never by GORM, so an update cannot move them.
type JobDTO struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Department     string    `gorm:"type:varchar(255)"`
	Location       string    `gorm:"type:varchar(255);index"`
	EmploymentType string    `gorm:"type:varchar(100)"`
	Experience     string    `gorm:"type:varchar(100)"`
	Salary         string    `gorm:"type:varchar(100)"`
	Category       *string   `gorm:"type:varchar(100);index"`
	Description    string    `gorm:"type:text"`
	Requirements   string    `gorm:"type:text"`
	Posted         bool      `gorm:"not null"`
	Applicants     int       `gorm:"not null"`
	Featured       bool      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default "job_dtos".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain maps an aggregate to a row. An empty category becomes NULL.
func fromDomain(j *job.Job) JobDTO {
	var category *string
	if c := j.Category(); c != "" {
		category = &c
	}

	return JobDTO{
		ID:             uint64(j.ID()),
		Title:          j.Title(),
		Department:     j.Department(),
		Location:       j.Location(),
		EmploymentType: j.EmploymentType(),
		Experience:     j.Experience(),
		Salary:         j.Salary(),
		Category:       category,
		Description:    j.Description(),
		Requirements:   j.Requirements(),
		Posted:         j.Posted(),
		Applicants:     j.Applicants(),
		Featured:       j.Featured(),
		CreatedAt:      j.CreatedAt(),
		UpdatedAt:      j.UpdatedAt(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	var category string
	if dto.Category != nil {
		category = *dto.Category
	}

	return job.RestoreJob(
		job.ID(dto.ID),
		job.Details{
			Title:          dto.Title,
			Department:     dto.Department,
			Location:       dto.Location,
			EmploymentType: dto.EmploymentType,
			Experience:     dto.Experience,
			Salary:         dto.Salary,
			Category:       category,
			Description:    dto.Description,
			Requirements:   dto.Requirements,
			Posted:         dto.Posted,
			Featured:       dto.Featured,
		},
		dto.Applicants,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func toDomainList(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
