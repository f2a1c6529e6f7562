package handlers

import (
	"time"

	"refind/internal/log"
	"refind/internal/services"
	"refind/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "login", fiber.Map{"Err": "", "CSRFToken": tok})
}

// Login binds a phone number to the session. The number becomes the contact
// shown next to this reporter's records.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	phone, ok := validate.Phone(c.FormValue("phone"))
	if !ok {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"reason": "bad_phone_format"})
		return c.Status(400).Render("login", fiber.Map{"Err": "Enter a valid phone number (at least 10 digits)", "CSRFToken": tok})
	}

	rep, err := h.Auth.LoginPhone(sid, phone)
	if err != nil {
		tok := c.Cookies("csrf_")
		log.Error(c, "auth.login.fail", err, nil)
		return c.Status(500).Render("login", fiber.Map{"Err": "Could not sign you in. Please try again.", "CSRFToken": tok})
	}

	log.Audit(c, "auth.login.success", map[string]any{"reporter_id": rep.ID})
	return c.Redirect("/")
}

func (h *AuthHandler) AdminLoginForm(c *fiber.Ctx) error {
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "admin_login", fiber.Map{"Err": "", "CSRFToken": tok})
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok || pass == "" {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.admin.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}

	u, err := h.Auth.LoginAdmin(sid, email, pass)
	if err != nil {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.admin.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}

	log.Audit(c, "auth.admin.login.success", map[string]any{"user_id": u.ID})
	return c.Redirect("/admin")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
