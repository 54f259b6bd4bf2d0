package repository

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAdmissionNotFound is returned when no admission row matches the lookup.
var ErrAdmissionNotFound = errors.New("admission not found")

// AdmissionRepository defines persistence operations over admission records.
// Records are insert-once from the public form and reviewed in place by
// admins; there is no delete.
type AdmissionRepository interface {
	// Create inserts a new admission with status "submitted". This is the
	// commit point of the submission pipeline: it runs only after the
	// document upload has been confirmed.
	Create(ctx context.Context, admission *entity.Admission) error

	// FindByID retrieves a single admission record.
	FindByID(ctx context.Context, id int64) (*entity.Admission, error)

	// List returns one page of admissions matching the filter plus the total
	// match count for page metadata. Results are ordered newest first.
	List(ctx context.Context, filter entity.AdmissionFilter) ([]*entity.Admission, int64, error)

	// UpdateReview sets the review status and optional admin notes, stamping
	// the update time. The stored record is returned.
	UpdateReview(ctx context.Context, id int64, status entity.AdmissionStatus, notes *string) (*entity.Admission, error)
}
