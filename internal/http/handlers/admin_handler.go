package handlers

import (
	applog "refind/internal/log"
	"refind/internal/repos"
	"refind/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Items *repos.ItemRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	counts, err := h.Items.CountByKind()
	if err != nil {
		applog.Error(c, "admin.counts.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	items, err := h.Items.ListRecent(100)
	if err != nil {
		applog.Error(c, "admin.items.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load items"})
	}
	return render(c, "admin_dashboard", fiber.Map{"Counts": counts, "Items": items})
}

// POST /admin/items/:id/delete removes abandoned or abusive reports. Claim
// codes of deleted FOUND records die with the row.
func (h *AdminHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	removed, err := h.Items.DeleteByID(id)
	if err != nil {
		applog.Error(c, "admin.items.delete.fail", err, map[string]any{"item_id": id})
		return c.Status(400).SendString("could not delete item")
	}
	applog.Audit(c, "admin.items.delete", map[string]any{"item_id": id, "removed": removed})
	return c.Redirect("/admin")
}
