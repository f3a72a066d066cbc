package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gilangrmdhn/topup_backend_go/internal/repositories"
)

// SystemHandler melayani liveness dan diagnostik koneksi database.
type SystemHandler struct {
	store  repositories.Store
	urlSet bool
}

func NewSystemHandler(store repositories.Store, databaseURLSet bool) *SystemHandler {
	return &SystemHandler{store: store, urlSet: databaseURLSet}
}

func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Indo Game Top-up Backend Running"})
}

// TestDatabase selalu 200; status koneksi dilaporkan di body, error koneksi
// dipotong maksimal 120 karakter.
func (h *SystemHandler) TestDatabase(c *fiber.Ctx) error {
	res := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if !h.store.Available() {
		if msg := h.store.LastError(); msg != "" {
			res["database"] = "❌ Error: " + truncate(msg, 120)
		}
		return c.JSON(res)
	}

	res["database"] = "✅ Connected & Working"
	if h.urlSet {
		res["database_url"] = "✅ Set"
	} else {
		res["database_url"] = "❌ Not Set"
	}
	res["database_name"] = h.store.Name()
	res["connection_status"] = "Connected"

	names, err := h.store.Collections(c.Context())
	if err != nil {
		res["database"] = "❌ Error: " + truncate(err.Error(), 120)
		return c.JSON(res)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	res["collections"] = names
	return c.JSON(res)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
