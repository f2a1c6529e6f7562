package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject identities if present
	if rep := c.Locals("reporter"); rep != nil {
		data["Reporter"] = rep
	}
	if u := c.Locals("admin"); u != nil {
		data["Admin"] = u
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// Fallback: the cookie still carries a usable token when Locals was
		// not populated, which keeps hidden form fields from going out empty.
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
