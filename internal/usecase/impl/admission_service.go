package impl

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"

	"campus/config"
	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/usecase"
	"campus/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	dateLayout     = "2006-01-02"
	pdfContentType = "application/pdf"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// admissionService implements the AdmissionUsecase interface.
type admissionService struct {
	admissionRepo  repository.AdmissionRepository
	storage        service.DocumentStorage
	maxUploadBytes int64
	signedURLTTL   time.Duration
	logger         *slog.Logger
}

// AdmissionServiceParams holds dependencies for admissionService, injected by Fx.
type AdmissionServiceParams struct {
	fx.In

	AdmissionRepo repository.AdmissionRepository
	Storage       service.DocumentStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdmissionService is the constructor for admissionService.
func NewAdmissionService(params AdmissionServiceParams) usecase.AdmissionUsecase {
	return &admissionService{
		admissionRepo:  params.AdmissionRepo,
		storage:        params.Storage,
		maxUploadBytes: params.Config.Storage.MaxUploadBytes,
		signedURLTTL:   params.Config.Storage.SignedURLTTL,
		logger:         params.Logger,
	}
}

func (srv *admissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit runs the two-phase submission: the dossier goes to object storage
// first, then the admission row is inserted as the commit point. Every
// validation happens before the first byte is written, so a rejected request
// leaves nothing behind. A storage success followed by an insert failure
// orphans the object; orphans are never visible to the application.
func (srv *admissionService) Submit(ctx context.Context, input usecase.SubmitAdmissionInput) (*entity.Admission, error) {
	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date_of_birth must use the YYYY-MM-DD format")
	}

	if !entity.PriorDegree(input.PriorDegree).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown prior degree")
	}

	if mediaType, _, parseErr := mime.ParseMediaType(input.ContentType); parseErr != nil || mediaType != pdfContentType {
		return nil, domainerrors.ErrUnsupportedFileType
	}

	if input.Size > srv.maxUploadBytes {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("dossier is %s, limit is %s", util.FormatBytes(input.Size), util.FormatBytes(srv.maxUploadBytes)))
	}
	if input.Size <= 0 || input.File == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a PDF dossier is required")
	}

	now := time.Now()
	key := fmt.Sprintf("admissions/%d/%d-%s", now.Year(), now.Unix(), util.SanitizeFilename(input.Filename))

	pdfURL, err := srv.storage.Upload(ctx, key, input.File, pdfContentType)
	if err != nil {
		srv.log(ctx).Error("Dossier upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, err
	}

	admission := &entity.Admission{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:        strings.TrimSpace(input.Phone),
		NationalID:   strings.TrimSpace(input.NationalID),
		DateOfBirth:  dob,
		Address:      strings.TrimSpace(input.Address),
		PriorDegree:  entity.PriorDegree(input.PriorDegree),
		GPAOrScore:   input.GPAOrScore,
		ProgramTrack: input.ProgramTrack,
		PDFURL:       pdfURL,
		Status:       entity.AdmissionSubmitted,
	}

	if err := srv.admissionRepo.Create(ctx, admission); err != nil {
		srv.log(ctx).Error("Admission insert failed after upload, object orphaned",
			slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record admission")
	}

	srv.log(ctx).Info("Admission submitted",
		slog.Int64("admissionID", admission.ID), slog.String("email", admission.Email))

	return admission, nil
}

// Get retrieves one application.
func (srv *admissionService) Get(ctx context.Context, id int64) (*entity.Admission, error) {
	admission, err := srv.admissionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAdmissionNotFound) {
		return nil, domainerrors.ErrAdmissionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load admission")
	}

	return admission, nil
}

// List returns one filtered page plus the total match count.
func (srv *admissionService) List(ctx context.Context, input usecase.ListAdmissionsInput) (*usecase.ListAdmissionsOutput, error) {
	filter, err := buildAdmissionFilter(input)
	if err != nil {
		return nil, err
	}

	items, total, err := srv.admissionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admissions")
	}

	return &usecase.ListAdmissionsOutput{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Review records a status change and optional reviewer notes. Any valid
// status may follow any other; re-opening a decided file is allowed.
func (srv *admissionService) Review(ctx context.Context, id int64, input usecase.ReviewAdmissionInput) (*entity.Admission, error) {
	status := entity.AdmissionStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown admission status")
	}

	admission, err := srv.admissionRepo.UpdateReview(ctx, id, status, input.NotesAdmin)
	if errors.Is(err, repository.ErrAdmissionNotFound) {
		return nil, domainerrors.ErrAdmissionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update admission review")
	}

	srv.log(ctx).Info("Admission reviewed",
		slog.Int64("admissionID", id), slog.String("status", string(status)))

	return admission, nil
}

// SignedPDFURL issues a fresh time-limited download link for the dossier.
// The stored URL is a stable reference, never served directly.
func (srv *admissionService) SignedPDFURL(ctx context.Context, id int64) (string, time.Duration, error) {
	admission, err := srv.Get(ctx, id)
	if err != nil {
		return "", 0, err
	}

	key, err := srv.storage.KeyFromURL(admission.PDFURL)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to derive object key")
	}

	signed, err := srv.storage.SignedURL(ctx, key, srv.signedURLTTL)
	if err != nil {
		return "", 0, err
	}

	return signed, srv.signedURLTTL, nil
}

func buildAdmissionFilter(input usecase.ListAdmissionsInput) (entity.AdmissionFilter, error) {
	filter := entity.AdmissionFilter{
		Search: strings.TrimSpace(input.Search),
		Page:   input.Page,
		Limit:  input.Limit,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	if input.Status != "" {
		status := entity.AdmissionStatus(input.Status)
		if !status.IsValid() {
			return entity.AdmissionFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown admission status")
		}
		filter.Status = &status
	}

	if input.CreatedFrom != "" {
		from, err := time.Parse(dateLayout, input.CreatedFrom)
		if err != nil {
			return entity.AdmissionFilter{}, domainerrors.ErrValidationFailed.WithDetails("created_from must use the YYYY-MM-DD format")
		}
		filter.CreatedFrom = &from
	}

	if input.CreatedTo != "" {
		to, err := time.Parse(dateLayout, input.CreatedTo)
		if err != nil {
			return entity.AdmissionFilter{}, domainerrors.ErrValidationFailed.WithDetails("created_to must use the YYYY-MM-DD format")
		}
		// Inclusive upper bound: the whole named day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.CreatedTo = &to
	}

	return filter, nil
}
