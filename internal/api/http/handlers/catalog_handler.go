package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-portal/internal/api/dto"
	"github.com/spec-kit/itsm-portal/internal/service"
)

// CatalogHandler serves the static service catalog.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListApplications GET /catalog/applications.
func (h *CatalogHandler) ListApplications(c *fiber.Ctx) error {
	apps := h.service.List(c.Query("category"), c.Query("q"))
	items := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		items = append(items, dto.ApplicationResponse{
			ID:          app.ID,
			Title:       app.Title,
			Description: app.Description,
			Icon:        app.Icon,
			FormURL:     app.FormURL,
			Category:    app.Category,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListCategories GET /catalog/categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Categories()})
}
