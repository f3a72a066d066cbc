package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gilangrmdhn/topup_backend_go/internal/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(s *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

func (h *CatalogHandler) ListGames(c *fiber.Ctx) error {
	items, err := h.svc.ListGames(c.Context(), c.Query("q"))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(items)
}

// GetGame membalas JSON null (bukan 404) kalau slug tidak ditemukan.
func (h *CatalogHandler) GetGame(c *fiber.Ctx) error {
	item, err := h.svc.GetGame(c.Context(), c.Params("slug"))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(item)
}

func (h *CatalogHandler) ListOptions(c *fiber.Ctx) error {
	items, err := h.svc.ListOptions(c.Context(), c.Params("slug"))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(items)
}
