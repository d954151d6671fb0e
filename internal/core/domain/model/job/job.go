package job

import (
	"errors"
	"math"
	"strings"
	"time"

	"hiring/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job bypassed NewJob / RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrIDAlreadyAssigned is returned when a store tries to re-key a persisted job.
	ErrIDAlreadyAssigned = errors.New("job id is already assigned")
)

// MaxApplicants bounds the applicant counter to what an INT column holds.
const MaxApplicants = math.MaxInt32

// ID identifies a persisted job. Zero means "not persisted yet".
type ID uint64

// IsZero reports whether the id has not been assigned.
func (id ID) IsZero() bool {
	return id == 0
}

// Details holds every field of a listing that Update overwrites.
type Details struct {
	Title          string
	Department     string
	Location       string
	EmploymentType string
	Experience     string
	Salary         string
	Category       string
	Description    string
	Requirements   string
	Posted         bool
	Featured       bool
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	return nil
}

// Job is the aggregate root for a job listing.
//
// Invariants:
//   - id is zero until the store assigns it, then immutable
//   - title is never blank
//   - applicants is within [0, MaxApplicants]
//   - createdAt <= updatedAt
type Job struct {
	id         ID
	details    Details
	applicants int
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewJob creates a job that has not been persisted yet. Both timestamps are set to now.
func NewJob(details Details, applicants int, now time.Time) (*Job, error) {
	j := &Job{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setDetails(details),
		j.setApplicants(applicants),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob rebuilds a persisted job from storage.
func RestoreJob(
	id ID,
	details Details,
	applicants int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Job, error) {
	if id.IsZero() {
		return nil, errs.NewValueIsRequiredError("id")
	}

	j := &Job{
		id:            id,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setDetails(details),
		j.setApplicants(applicants),
		j.checkTimestamps(),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the job was built through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// AssignID records the identifier chosen by the store. It fails once an id is set.
func (j *Job) AssignID(id ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("id")
	}
	if !j.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	j.id = id
	return nil
}

// Update overwrites every mutable field with details. The id, the applicant
// counter and both timestamps are left as they are.
func (j *Job) Update(details Details) error {
	return j.setDetails(details)
}

// ID returns the store-assigned identifier, zero before the first save.
func (j *Job) ID() ID {
	return j.id
}

// Details returns a copy of the mutable fields.
func (j *Job) Details() Details {
	return j.details
}

func (j *Job) Title() string {
	return j.details.Title
}

func (j *Job) Department() string {
	return j.details.Department
}

func (j *Job) Location() string {
	return j.details.Location
}

func (j *Job) EmploymentType() string {
	return j.details.EmploymentType
}

func (j *Job) Experience() string {
	return j.details.Experience
}

func (j *Job) Salary() string {
	return j.details.Salary
}

func (j *Job) Category() string {
	return j.details.Category
}

func (j *Job) Description() string {
	return j.details.Description
}

func (j *Job) Requirements() string {
	return j.details.Requirements
}

func (j *Job) Posted() bool {
	return j.details.Posted
}

func (j *Job) Featured() bool {
	return j.details.Featured
}

func (j *Job) Applicants() int {
	return j.applicants
}

func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

func (j *Job) setDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	j.details = details
	return nil
}

func (j *Job) setApplicants(applicants int) error {
	if applicants < 0 || applicants > MaxApplicants {
		return errs.NewValueIsOutOfRangeError("applicants", applicants, 0, MaxApplicants)
	}
	j.applicants = applicants
	return nil
}

func (j *Job) checkTimestamps() error {
	if j.updatedAt.Before(j.createdAt) {
		return errs.NewValueIsInvalidError("updatedAt is before createdAt")
	}
	return nil
}
