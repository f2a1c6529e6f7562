package handlers

import (
	"errors"

	"refind/internal/domain"
	applog "refind/internal/log"
	"refind/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ClaimHandler struct {
	Claims *services.ClaimService
}

// Form pre-fills code and item id from query params so the match list can
// link straight here.
func (h *ClaimHandler) Form(c *fiber.Ctx) error {
	return render(c, "claim", fiber.Map{
		"Code":   c.Query("code"),
		"ItemID": c.Query("itemId"),
	})
}

// Claim verifies the (code, itemId) pair and retires the record on success.
// A wrong pair and an already-claimed item look the same to the user: both
// codes should be re-checked.
func (h *ClaimHandler) Claim(c *fiber.Ctx) error {
	code := c.FormValue("code")
	itemID := c.FormValue("itemId")

	it, err := h.Claims.Claim(code, itemID)
	if err != nil {
		tok := c.Cookies("csrf_")
		switch {
		case domain.IsValidation(err):
			applog.Security(c, "claim.validation.fail", map[string]any{"reason": err.Error()})
			return c.Status(400).Render("claim", fiber.Map{
				"Err": "Enter the 6-digit claim code and the item ID.", "Code": code, "ItemID": itemID, "CSRFToken": tok,
			})
		case errors.Is(err, domain.ErrNotFound):
			applog.Info(c, "claim.notfound", map[string]any{"item_id": itemID})
			return c.Status(404).Render("claim", fiber.Map{
				"Err": "No item found with this code and item ID combination. Please verify both and try again.", "Code": code, "ItemID": itemID, "CSRFToken": tok,
			})
		default:
			applog.Error(c, "claim.store.fail", err, map[string]any{"item_id": itemID})
			return c.Status(503).Render("claim", fiber.Map{
				"Err": "We could not reach the item store. Nothing was changed; please retry.", "Code": code, "ItemID": itemID, "CSRFToken": tok,
			})
		}
	}

	applog.Audit(c, "claim.success", map[string]any{"item_id": it.ID})
	return render(c, "claimed", fiber.Map{"Title": it.Title})
}
