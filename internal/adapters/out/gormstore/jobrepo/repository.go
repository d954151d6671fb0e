package jobrepo

import (
	"context"
	"errors"
	"strings"

	"hiring/internal/core/domain/model/job"
	"hiring/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements ports.JobRepository.
// Every query is written so that PostgreSQL and MySQL accept it unchanged.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a repository on db, which may be a transaction.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Add inserts a new job and assigns the generated id to it.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return job.ErrIDAlreadyAssigned
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(job.ID(dto.ID))
}

// Update writes every column except id and created_at.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows when nothing changed.
		exists, err := r.exists(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("job", uint64(aggregate.ID()))
		}
	}

	return nil
}

// Delete removes the row with the given id, if any.
func (r *GormJobRepository) Delete(ctx context.Context, id job.ID) error {
	return r.db.WithContext(ctx).Delete(&JobDTO{}, "id = ?", uint64(id)).Error
}

// Get retrieves a job by id.
func (r *GormJobRepository) Get(ctx context.Context, id job.ID) (*job.Job, error) {
	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", uint64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", uint64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&JobDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormJobRepository) FindAll(ctx context.Context) ([]*job.Job, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormJobRepository) FindFeatured(ctx context.Context) ([]*job.Job, error) {
	return r.find(r.db.WithContext(ctx).Where("featured = ?", true))
}

func (r *GormJobRepository) FindByCategory(ctx context.Context, category string) ([]*job.Job, error) {
	return r.find(r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *GormJobRepository) FindByLocationContaining(ctx context.Context, fragment string) ([]*job.Job, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(location) LIKE ?", containsPattern(fragment)))
}

// FindWithFilters narrows the query by every non-empty criterion.
// The search text is looked up in title, department, description and requirements.
func (r *GormJobRepository) FindWithFilters(ctx context.Context, filter job.Filter) ([]*job.Job, error) {
	query := r.db.WithContext(ctx)

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(department) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requirements) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", containsPattern(filter.Location))
	}

	return r.find(query)
}

func (r *GormJobRepository) FindAllCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

func (r *GormJobRepository) FindAllLocations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "location")
}

func (r *GormJobRepository) find(query *gorm.DB) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormJobRepository) distinct(ctx context.Context, column string) ([]string, error) {
	values := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *GormJobRepository) exists(ctx context.Context, id job.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&JobDTO{}).Where("id = ?", uint64(id)).Count(&count).Error
	return count > 0, err
}

// containsPattern builds a lower-cased LIKE pattern matching fragment anywhere.
// Backslash is the default LIKE escape in both PostgreSQL and MySQL.
func containsPattern(fragment string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(fragment))
	return "%" + escaped + "%"
}
