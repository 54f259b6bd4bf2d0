package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"campus/internal/delivery/http/response"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdmissionHandler holds dependencies for the admissions endpoints.
type AdmissionHandler struct {
	uc     usecase.AdmissionUsecase
	logger *slog.Logger
}

// NewAdmissionHandler is the constructor for AdmissionHandler, injected by Fx.
func NewAdmissionHandler(uc usecase.AdmissionUsecase, logger *slog.Logger) *AdmissionHandler {
	return &AdmissionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the public multipart application form.
func (h *AdmissionHandler) Submit(c echo.Context) error {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("the 'pdf' file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	input := usecase.SubmitAdmissionInput{
		FullName:     c.FormValue("full_name"),
		Email:        c.FormValue("email"),
		Phone:        c.FormValue("phone"),
		NationalID:   c.FormValue("national_id"),
		DateOfBirth:  c.FormValue("date_of_birth"),
		Address:      c.FormValue("address"),
		PriorDegree:  c.FormValue("prior_degree"),
		GPAOrScore:   optionalFormValue(c, "gpa_or_score"),
		ProgramTrack: optionalFormValue(c, "program_track"),
		Filename:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		File:         file,
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	admission, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":     admission.ID,
		"status": admission.Status,
	}, "Application submitted")
}

// List handles the admin listing with filters and pagination.
func (h *AdmissionHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	input := usecase.ListAdmissionsInput{
		Status:      c.QueryParam("status"),
		Search:      c.QueryParam("search"),
		CreatedFrom: c.QueryParam("created_from"),
		CreatedTo:   c.QueryParam("created_to"),
		Page:        page,
		Limit:       limit,
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items": output.Items,
		"total": output.Total,
		"page":  output.Page,
		"limit": output.Limit,
	}, "")
}

// Get handles the admin single-record read.
func (h *AdmissionHandler) Get(c echo.Context) error {
	id, err := admissionID(c)
	if err != nil {
		return err
	}

	admission, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admission, "")
}

// Review handles the admin status/notes update.
func (h *AdmissionHandler) Review(c echo.Context) error {
	id, err := admissionID(c)
	if err != nil {
		return err
	}

	var input usecase.ReviewAdmissionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	admission, err := h.uc.Review(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admission, "Review recorded")
}

// SignedPDFURL returns a short-lived download link, never the file itself.
func (h *AdmissionHandler) SignedPDFURL(c echo.Context) error {
	id, err := admissionID(c)
	if err != nil {
		return err
	}

	signed, ttl, err := h.uc.SignedPDFURL(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"url":        signed,
		"expires_in": int(ttl.Seconds()),
	}, "")
}

func admissionID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("admission id must be a positive integer")
	}

	return id, nil
}

func optionalFormValue(c echo.Context, name string) *string {
	if v := c.FormValue(name); v != "" {
		return &v
	}

	return nil
}
