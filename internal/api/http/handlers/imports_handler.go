package handlers

import (
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-portal/internal/api/dto"
	"github.com/spec-kit/itsm-portal/internal/importer"
	"github.com/spec-kit/itsm-portal/internal/service"
	apperrors "github.com/spec-kit/itsm-portal/pkg/util"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportsHandler manages spreadsheet import endpoints.
type ImportsHandler struct {
	service *service.ImportService
}

// NewImportsHandler constructs handler.
func NewImportsHandler(importService *service.ImportService) *ImportsHandler {
	return &ImportsHandler{service: importService}
}

// Upload POST /imports. Multipart form: "file" holds the workbook, the
// optional "mapping" field holds a JSON object of header-name overrides
// keyed by logical field name.
func (h *ImportsHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file field required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unable to open uploaded file", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	var overrides map[string]string
	if raw := c.FormValue("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
			return apperrors.NewValidationError("mapping must be a JSON object of field to header name", nil)
		}
	}

	result, tickets := h.service.ImportFile(c.Context(), data, overrides)

	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": dto.ImportResponse{
		Result: dto.ImportResultResponse{
			Success:       result.Success,
			TotalRows:     result.TotalRows,
			ProcessedRows: result.ProcessedRows,
			Errors:        errorsOrEmpty(result.Errors),
		},
		Tickets: items,
	}})
}

// Template GET /imports/template.
func (h *ImportsHandler) Template(c *fiber.Ctx) error {
	data, err := h.service.Template()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+importer.TemplateFileName+`"`)
	return c.Send(data)
}

func errorsOrEmpty(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}
