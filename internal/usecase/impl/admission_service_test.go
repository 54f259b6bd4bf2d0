package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"campus/config"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	mockRepo "campus/internal/mocks/repository"
	mockService "campus/internal/mocks/service"
	"campus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxUpload = 20 << 20

func testStorageConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{
		MaxUploadBytes: testMaxUpload,
		SignedURLTTL:   time.Hour,
	}

	return cfg
}

func validSubmitInput() usecase.SubmitAdmissionInput {
	return usecase.SubmitAdmissionInput{
		FullName:    "Ali Ben",
		Email:       "Ali@Example.com",
		Phone:       "+212600000000",
		NationalID:  "AB123456",
		DateOfBirth: "2000-01-01",
		Address:     "Fès",
		PriorDegree: "licence",
		Filename:    "dossier.pdf",
		ContentType: "application/pdf",
		Size:        2 << 20,
		File:        strings.NewReader("%PDF-1.4 test"),
	}
}

func TestAdmissionService_Submit_HappyPath(t *testing.T) {
	ctx := context.Background()

	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	storage := mockService.NewMockDocumentStorage(t)

	storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "admissions/") && strings.HasSuffix(key, "-dossier.pdf")
		}), mock.Anything, "application/pdf").
		Return("https://storage.example.com/documents/admissions/2026/1-dossier.pdf", nil)

	admissionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Admission")).
		Run(func(ctx context.Context, admission *entity.Admission) {
			admission.ID = 42
			admission.CreatedAt = time.Now()
			admission.UpdatedAt = admission.CreatedAt
		}).
		Return(nil)

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: admissionRepo,
		Storage:       storage,
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	admission, err := service.Submit(ctx, validSubmitInput())

	require.NoError(t, err)
	assert.Equal(t, int64(42), admission.ID)
	assert.Equal(t, entity.AdmissionSubmitted, admission.Status)
	assert.Equal(t, "ali@example.com", admission.Email)
	assert.Equal(t, entity.DegreeLicence, admission.PriorDegree)
	assert.Equal(t, "https://storage.example.com/documents/admissions/2026/1-dossier.pdf", admission.PDFURL)
}

func TestAdmissionService_Submit_RejectsNonPDF(t *testing.T) {
	ctx := context.Background()

	// No storage or repository expectations: a bad MIME type must be
	// rejected before anything is written.
	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: mockRepo.NewMockAdmissionRepository(t),
		Storage:       mockService.NewMockDocumentStorage(t),
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	input := validSubmitInput()
	input.ContentType = "image/png"

	_, err := service.Submit(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestAdmissionService_Submit_SizeBoundary(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly at the limit is accepted", func(t *testing.T) {
		admissionRepo := mockRepo.NewMockAdmissionRepository(t)
		storage := mockService.NewMockDocumentStorage(t)

		storage.EXPECT().
			Upload(ctx, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
			Return("https://storage.example.com/documents/admissions/2026/2-dossier.pdf", nil)
		admissionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Admission")).Return(nil)

		service := NewAdmissionService(AdmissionServiceParams{
			AdmissionRepo: admissionRepo,
			Storage:       storage,
			Config:        testStorageConfig(),
			Logger:        discardLogger(),
		})

		input := validSubmitInput()
		input.Size = testMaxUpload

		_, err := service.Submit(ctx, input)
		require.NoError(t, err)
	})

	t.Run("one byte over is rejected before upload", func(t *testing.T) {
		service := NewAdmissionService(AdmissionServiceParams{
			AdmissionRepo: mockRepo.NewMockAdmissionRepository(t),
			Storage:       mockService.NewMockDocumentStorage(t),
			Config:        testStorageConfig(),
			Logger:        discardLogger(),
		})

		input := validSubmitInput()
		input.Size = testMaxUpload + 1

		_, err := service.Submit(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	})
}

func TestAdmissionService_Submit_MalformedDateOfBirth(t *testing.T) {
	ctx := context.Background()

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: mockRepo.NewMockAdmissionRepository(t),
		Storage:       mockService.NewMockDocumentStorage(t),
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	input := validSubmitInput()
	input.DateOfBirth = "01/01/2000"

	_, err := service.Submit(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdmissionService_Submit_StorageFailureLeavesNoRecord(t *testing.T) {
	ctx := context.Background()

	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	storage := mockService.NewMockDocumentStorage(t)

	storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
		Return("", errors.New("bucket unavailable"))

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: admissionRepo,
		Storage:       storage,
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	_, err := service.Submit(ctx, validSubmitInput())

	require.Error(t, err)
	admissionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdmissionService_Review(t *testing.T) {
	ctx := context.Background()
	notes := "strong file"

	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	admissionRepo.EXPECT().
		UpdateReview(ctx, int64(7), entity.AdmissionAccepted, &notes).
		Return(&entity.Admission{ID: 7, Status: entity.AdmissionAccepted, NotesAdmin: &notes}, nil)

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: admissionRepo,
		Storage:       mockService.NewMockDocumentStorage(t),
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	admission, err := service.Review(ctx, 7, usecase.ReviewAdmissionInput{Status: "accepted", NotesAdmin: &notes})

	require.NoError(t, err)
	assert.Equal(t, entity.AdmissionAccepted, admission.Status)
	require.NotNil(t, admission.NotesAdmin)
	assert.Equal(t, notes, *admission.NotesAdmin)
}

func TestAdmissionService_Review_UnknownStatus(t *testing.T) {
	ctx := context.Background()

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: mockRepo.NewMockAdmissionRepository(t),
		Storage:       mockService.NewMockDocumentStorage(t),
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	_, err := service.Review(ctx, 7, usecase.ReviewAdmissionInput{Status: "archived"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdmissionService_SignedPDFURL(t *testing.T) {
	ctx := context.Background()
	admission := &entity.Admission{
		ID:     9,
		PDFURL: "https://storage.example.com/documents/admissions/2026/3-file.pdf",
		Status: entity.AdmissionSubmitted,
	}

	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	storage := mockService.NewMockDocumentStorage(t)

	admissionRepo.EXPECT().FindByID(ctx, int64(9)).Return(admission, nil)
	storage.EXPECT().KeyFromURL(admission.PDFURL).Return("admissions/2026/3-file.pdf", nil)
	storage.EXPECT().
		SignedURL(ctx, "admissions/2026/3-file.pdf", time.Hour).
		Return("https://signed.example.com/admissions/2026/3-file.pdf?sig=abc", nil)

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: admissionRepo,
		Storage:       storage,
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	url, ttl, err := service.SignedPDFURL(ctx, 9)

	require.NoError(t, err)
	assert.Contains(t, url, "sig=abc")
	assert.Equal(t, time.Hour, ttl)
}

func TestAdmissionService_List_FilterValidation(t *testing.T) {
	ctx := context.Background()

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: mockRepo.NewMockAdmissionRepository(t),
		Storage:       mockService.NewMockDocumentStorage(t),
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	_, err := service.List(ctx, usecase.ListAdmissionsInput{Status: "bogus"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// The offending field must survive to the response details.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "admission status")

	_, err = service.List(ctx, usecase.ListAdmissionsInput{CreatedFrom: "01/01/2026"})
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "created_from")

	_, err = service.List(ctx, usecase.ListAdmissionsInput{CreatedTo: "31-12-2026"})
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "created_to")
}

func TestAdmissionService_List_DefaultsPagination(t *testing.T) {
	ctx := context.Background()

	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	admissionRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter entity.AdmissionFilter) bool {
			return filter.Page == 1 && filter.Limit == 20 && filter.Status == nil
		})).
		Return([]*entity.Admission{{ID: 1}}, int64(1), nil)

	service := NewAdmissionService(AdmissionServiceParams{
		AdmissionRepo: admissionRepo,
		Storage:       mockService.NewMockDocumentStorage(t),
		Config:        testStorageConfig(),
		Logger:        discardLogger(),
	})

	out, err := service.List(ctx, usecase.ListAdmissionsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
}
