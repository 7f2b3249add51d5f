package handlers

import (
	"errors"
	"io"
	"net/http"

	"transaction-importer/internal/dto"
	apierrors "transaction-importer/internal/errors"
	"transaction-importer/internal/services"
	"transaction-importer/internal/staging"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const uploadFormField = "file"

// UploadStore stores uploaded files where the import service can read them
type UploadStore interface {
	Save(name string, r io.Reader) (string, error)
}

// ImportHandler handles CSV import requests
type ImportHandler struct {
	importService services.ImportServiceInterface
	store         UploadStore
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface, store UploadStore) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		store:         store,
	}
}

// ImportTransactions stages the uploaded multipart file and imports it
// @Router /transactions/import [post]
func (h *ImportHandler) ImportTransactions(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		if isBodyTooLarge(err) {
			return SendError(c, apierrors.ValidationFileTooLarge)
		}
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("file: is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return SendError(c, apierrors.ImportFileUnreadable, apierrors.WithDetails("uploaded file could not be opened"))
	}
	defer src.Close()

	relativePath, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		return SendSystemError(c, err)
	}

	return h.runImport(c, relativePath)
}

// ImportStaged imports a file that is already in the staging directory
// @Router /transactions/import/staged [post]
func (h *ImportHandler) ImportStaged(c echo.Context) error {
	var req dto.ImportStagedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("request body must be valid JSON"))
	}

	if err := c.Validate(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("path: is required"))
		}
		return SendError(c, apierrors.ValidationGeneral)
	}

	return h.runImport(c, req.Path)
}

func (h *ImportHandler) runImport(c echo.Context, relativePath string) error {
	result, err := h.importService.ImportTransactions(c.Request().Context(), relativePath)
	if err != nil {
		return h.handleImportError(c, err)
	}

	if result.CleanupErr != nil {
		c.Logger().Warnf("staged file %s was not removed: %v", relativePath, result.CleanupErr)
	}

	return c.JSON(http.StatusCreated, dto.NewImportResponse(result))
}

// isBodyTooLarge covers both the net/http body limit and echo's BodyLimit middleware
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	var httpErr *echo.HTTPError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge
}

func (h *ImportHandler) handleImportError(c echo.Context, err error) error {
	if errors.Is(err, staging.ErrFileNotFound) {
		return SendError(c, apierrors.ImportFileMissing)
	}

	if errors.Is(err, staging.ErrOutsideStagingDir) || errors.Is(err, staging.ErrEmptyPath) {
		return SendError(c, apierrors.ImportInvalidPath)
	}

	if errors.Is(err, services.ErrUnreadableImportFile) {
		return SendError(c, apierrors.ImportFileUnreadable, apierrors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
