package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"campus/config"
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/validator"
	"campus/internal/domain/entity"
	mockRepo "campus/internal/mocks/repository"
	mockService "campus/internal/mocks/service"
	"campus/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func admissionTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{MaxUploadBytes: 20 << 20, SignedURLTTL: time.Hour}

	return cfg
}

func newAdmissionTestServer(t *testing.T, admissionRepo *mockRepo.MockAdmissionRepository, storage *mockService.MockDocumentStorage) *echo.Echo {
	t.Helper()

	uc := impl.NewAdmissionService(impl.AdmissionServiceParams{
		AdmissionRepo: admissionRepo,
		Storage:       storage,
		Config:        admissionTestConfig(),
		Logger:        discardLogger(),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	h := NewAdmissionHandler(uc, discardLogger())
	e.POST("/api/admissions", h.Submit)
	e.GET("/api/admissions/admin/:id/pdf", h.SignedPDFURL)

	return e
}

// buildSubmission assembles a multipart application form with the given
// dossier content type.
func buildSubmission(t *testing.T, fileContentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"full_name":     "Ali Ben",
		"email":         "ali@example.com",
		"phone":         "+212600000000",
		"national_id":   "AB123456",
		"date_of_birth": "2000-01-01",
		"address":       "Fès",
		"prior_degree":  "licence",
	}
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="pdf"; filename="dossier.pdf"`)
	header.Set("Content-Type", fileContentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test content"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestAdmissionHandler_SubmitHappyPath(t *testing.T) {
	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	storage := mockService.NewMockDocumentStorage(t)

	storage.EXPECT().
		Upload(mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
		Return("https://storage.example.com/documents/admissions/2026/1-dossier.pdf", nil)
	admissionRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Admission")).
		Run(func(ctx context.Context, admission *entity.Admission) {
			admission.ID = 42
		}).
		Return(nil)

	e := newAdmissionTestServer(t, admissionRepo, storage)

	body, contentType := buildSubmission(t, "application/pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/admissions", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"status":"submitted"`)
}

func TestAdmissionHandler_SubmitRejectsNonPDF(t *testing.T) {
	// No storage or repository expectations: nothing may be written.
	e := newAdmissionTestServer(t, mockRepo.NewMockAdmissionRepository(t), mockService.NewMockDocumentStorage(t))

	body, contentType := buildSubmission(t, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/admissions", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_FILE_TYPE")
}

func TestAdmissionHandler_SubmitRequiresFile(t *testing.T) {
	e := newAdmissionTestServer(t, mockRepo.NewMockAdmissionRepository(t), mockService.NewMockDocumentStorage(t))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("full_name", "Ali Ben"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admissions", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmissionHandler_SignedPDFURL(t *testing.T) {
	admissionRepo := mockRepo.NewMockAdmissionRepository(t)
	storage := mockService.NewMockDocumentStorage(t)

	admission := &entity.Admission{ID: 9, PDFURL: "https://storage.example.com/documents/admissions/2026/3-file.pdf"}
	admissionRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(admission, nil)
	storage.EXPECT().KeyFromURL(admission.PDFURL).Return("admissions/2026/3-file.pdf", nil)
	storage.EXPECT().
		SignedURL(mock.Anything, "admissions/2026/3-file.pdf", time.Hour).
		Return("https://signed.example.com/file.pdf?sig=abc", nil)

	e := newAdmissionTestServer(t, admissionRepo, storage)

	req := httptest.NewRequest(http.MethodGet, "/api/admissions/admin/9/pdf", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sig=abc")
	assert.Contains(t, rec.Body.String(), `"expires_in":3600`)
}

func TestAdmissionHandler_BadIDParam(t *testing.T) {
	e := newAdmissionTestServer(t, mockRepo.NewMockAdmissionRepository(t), mockService.NewMockDocumentStorage(t))

	req := httptest.NewRequest(http.MethodGet, "/api/admissions/admin/abc/pdf", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
