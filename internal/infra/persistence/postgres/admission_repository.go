package postgres

import (
	"context"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// admissionRepository implements the repository.AdmissionRepository interface using GORM.
type admissionRepository struct {
	db *gorm.DB
}

// NewAdmissionRepository is the constructor for admissionRepository.
func NewAdmissionRepository(db *gorm.DB) repository.AdmissionRepository {
	return &admissionRepository{db: db}
}

// Create inserts a new admission record. This is the commit point of the
// submission pipeline; the document upload has already been confirmed.
func (repo *admissionRepository) Create(ctx context.Context, admission *entity.Admission) error {
	admissionM := model.AdmissionModelFromDomain(admission)

	if err := repo.db.WithContext(ctx).Create(admissionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required admission fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admission")
	}

	admission.ID = admissionM.ID
	admission.CreatedAt = admissionM.CreatedAt
	admission.UpdatedAt = admissionM.UpdatedAt

	return nil
}

// FindByID retrieves a single admission record.
func (repo *admissionRepository) FindByID(ctx context.Context, id int64) (*entity.Admission, error) {
	var admissionM model.AdmissionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&admissionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find admission by id")
	}

	return admissionM.ToDomain(), nil
}

// List returns one page of admissions matching the filter plus the total
// match count, newest first.
func (repo *admissionRepository) List(ctx context.Context, filter entity.AdmissionFilter) ([]*entity.Admission, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdmissionModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"full_name ILIKE ? OR email ILIKE ? OR national_id ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count admissions")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var admissionModels []*model.AdmissionModel
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(limit).
		Find(&admissionModels).Error

	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list admissions")
	}

	admissions := make([]*entity.Admission, 0, len(admissionModels))
	for _, admissionM := range admissionModels {
		admissions = append(admissions, admissionM.ToDomain())
	}

	return admissions, total, nil
}

// UpdateReview sets the status and optional notes, stamps the update time
// and returns the stored record.
func (repo *admissionRepository) UpdateReview(ctx context.Context, id int64, status entity.AdmissionStatus, notes *string) (*entity.Admission, error) {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if notes != nil {
		updates["notes_admin"] = *notes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AdmissionModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admission review")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAdmissionNotFound
	}

	return repo.FindByID(ctx, id)
}
