// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

// respondServiceError maps a service error onto the right HTTP status.
// Validation errors carry field details; "not found" and credential errors
// keep their natural statuses; everything else is a 500 with the message
// hidden behind a generic body.
func respondServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.ErrorResponse(c, 404, "NOT_FOUND", msg, nil)
	case strings.Contains(msg, "invalid credentials"),
		strings.Contains(msg, "invalid refresh token"):
		utils.UnauthorizedResponse(c, msg)
	case strings.Contains(msg, "suspended"):
		utils.ForbiddenResponse(c, msg)
	case strings.Contains(msg, "invalid"):
		utils.BadRequestResponse(c, msg, nil)
	default:
		utils.InternalErrorResponse(c, "An internal error occurred")
	}
}

// parseIDParam reads a UUID path parameter or writes the 400 itself.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Invalid %s", name), nil)
		return uuid.Nil, false
	}
	return id, true
}

// readUploadFile drains one multipart file into an upload candidate,
// enforcing the per-file size cap.
func readUploadFile(header *multipart.FileHeader, maxSize int64) (*services.UploadFile, error) {
	if maxSize > 0 && header.Size > maxSize {
		return nil, fmt.Errorf("file %s exceeds the size limit", header.Filename)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &services.UploadFile{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// optionalFormFile returns the named multipart file when present, nil when
// the field was omitted.
func optionalFormFile(c *gin.Context, field string, maxSize int64) (*services.UploadFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readUploadFile(header, maxSize)
}
