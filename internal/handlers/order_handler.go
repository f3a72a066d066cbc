package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gilangrmdhn/topup_backend_go/internal/models"
	"github.com/gilangrmdhn/topup_backend_go/internal/services"
	"github.com/gilangrmdhn/topup_backend_go/pkg/response"
)

type OrderHandler struct {
	svc *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{svc: s}
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var in models.Order
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(rec)
}

func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	items, err := h.svc.List(c.Context(), limit)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(200).JSON(items)
}

// mapper error
func mapError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case services.ErrValidation:
		return response.ValidationError(c, e.Fields)
	case services.ErrUnavailable:
		return response.Error(c, fiber.StatusServiceUnavailable, e.Error())
	default:
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
