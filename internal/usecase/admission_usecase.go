package usecase

import (
	"context"
	"io"
	"time"

	"campus/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitAdmissionInput carries an application form together with the
// PDF dossier stream. Size is the declared length of the stream.
type SubmitAdmissionInput struct {
	FullName     string `validate:"required,max=255"`
	Email        string `validate:"required,email"`
	Phone        string `validate:"required,max=32"`
	NationalID   string `validate:"required,max=64"`
	DateOfBirth  string `validate:"required,datetime=2006-01-02"`
	Address      string `validate:"required,max=512"`
	PriorDegree  string `validate:"required,oneof=bac licence master other"`
	GPAOrScore   *string
	ProgramTrack *string

	Filename    string
	ContentType string
	Size        int64
	File        io.Reader
}

// ReviewAdmissionInput updates the review state of an application.
type ReviewAdmissionInput struct {
	Status     string  `json:"status" validate:"required,oneof=submitted under_review accepted rejected"`
	NotesAdmin *string `json:"notes_admin" validate:"omitempty,max=2000"`
}

// ListAdmissionsInput filters and paginates the admin listing.
type ListAdmissionsInput struct {
	Status      string
	Search      string
	CreatedFrom string
	CreatedTo   string
	Page        int
	Limit       int
}

// --- Output DTOs ---

// ListAdmissionsOutput returns one page plus the unfiltered-by-paging total.
type ListAdmissionsOutput struct {
	Items []*entity.Admission
	Total int64
	Page  int
	Limit int
}

// AdmissionUsecase defines the admissions pipeline operations.
type AdmissionUsecase interface {
	// Submit validates the form and the dossier, uploads the PDF to
	// object storage and records the application. No row is written when
	// the upload fails.
	Submit(ctx context.Context, input SubmitAdmissionInput) (*entity.Admission, error)

	Get(ctx context.Context, id int64) (*entity.Admission, error)
	List(ctx context.Context, input ListAdmissionsInput) (*ListAdmissionsOutput, error)

	// Review records a status change and optional reviewer notes.
	Review(ctx context.Context, id int64, input ReviewAdmissionInput) (*entity.Admission, error)

	// SignedPDFURL issues a short-lived signed URL for the stored dossier.
	SignedPDFURL(ctx context.Context, id int64) (string, time.Duration, error)
}
