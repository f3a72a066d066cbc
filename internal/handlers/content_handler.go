package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gilangrmdhn/topup_backend_go/internal/services"
)

type ContentHandler struct {
	svc *services.ContentService
}

func NewContentHandler(s *services.ContentService) *ContentHandler {
	return &ContentHandler{svc: s}
}

func (h *ContentHandler) Testimonials(c *fiber.Ctx) error {
	items, err := h.svc.Testimonials(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(items)
}

func (h *ContentHandler) Blog(c *fiber.Ctx) error {
	items, err := h.svc.BlogPosts(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(items)
}

func (h *ContentHandler) FAQ(c *fiber.Ctx) error {
	return c.Status(200).JSON(h.svc.FAQ())
}
