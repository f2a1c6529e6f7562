package handlers

import (
	applog "refind/internal/log"
	"refind/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireReporter enforces a phone login; record creation needs an explicit
// reporter identity to attach as the contact surface.
func RequireReporter(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		rep, err := auth.CurrentReporter(sid)
		if err != nil || rep == nil {
			return c.Redirect("/login")
		}
		c.Locals("reporter", rep)
		c.Locals("reporterID", rep.ID)
		return c.Next()
	}
}

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/admin/login")
		}
		u, err := auth.CurrentAdmin(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("admin", u)
		return c.Next()
	}
}
