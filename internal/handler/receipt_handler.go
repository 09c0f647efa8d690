package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReceiptHandler handles receipt attachment HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

func (h *ReceiptHandler) enabled(c echo.Context) error {
	if h.receiptService == nil || !h.receiptService.IsEnabled() {
		return NewServiceUnavailableError(c, "Receipt uploads are disabled (storage not configured)")
	}
	return nil
}

// UploadReceipt handles POST /api/v1/days/:date/transactions/:id/receipt
func (h *ReceiptHandler) UploadReceipt(c echo.Context) error {
	if err := h.enabled(c); err != nil {
		return err
	}
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "file", Message: "File is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to process file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		return NewInternalError(c, "Failed to read file")
	}

	tx, err := h.receiptService.Attach(c.Request().Context(), date, c.Param("id"), data, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReceiptTooLarge):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "File too large. Maximum size is 5MB"},
			})
		case errors.Is(err, service.ErrInvalidReceiptFormat):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "Invalid format. Supported: JPEG, PNG"},
			})
		case errors.Is(err, service.ErrReceiptTooSmall):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "Image too small. Minimum 50x50 pixels"},
			})
		case errors.Is(err, service.ErrInvalidReceiptData):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "Invalid image data"},
			})
		case errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Transaction not found")
		default:
			log.Error().Err(err).Str("date", date).Msg("Failed to upload receipt")
			return NewInternalError(c, "Failed to upload receipt")
		}
	}

	return c.JSON(http.StatusCreated, tx)
}

// GetReceiptURLs handles GET /api/v1/days/:date/transactions/:id/receipt
func (h *ReceiptHandler) GetReceiptURLs(c echo.Context) error {
	if err := h.enabled(c); err != nil {
		return err
	}
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}

	urls, err := h.receiptService.URLs(c.Request().Context(), date, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReceiptNotFound), errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Receipt not found")
		default:
			log.Error().Err(err).Str("date", date).Msg("Failed to presign receipt URLs")
			return NewInternalError(c, "Failed to generate receipt URLs")
		}
	}

	return c.JSON(http.StatusOK, urls)
}

// DeleteReceipt handles DELETE /api/v1/days/:date/transactions/:id/receipt
func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	if err := h.enabled(c); err != nil {
		return err
	}
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}

	if err := h.receiptService.Detach(c.Request().Context(), date, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrReceiptNotFound), errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Receipt not found")
		default:
			log.Error().Err(err).Str("date", date).Msg("Failed to delete receipt")
			return NewInternalError(c, "Failed to delete receipt")
		}
	}

	return c.NoContent(http.StatusNoContent)
}
