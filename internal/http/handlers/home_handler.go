package handlers

import (
	applog "refind/internal/log"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type HomeHandler struct {
	PublicURL string
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{"PublicURL": h.PublicURL})
}

// QR serves the scan-to-open banner image so a phone on the same network can
// jump straight to the app.
func (h *HomeHandler) QR(c *fiber.Ctx) error {
	png, err := qrcode.Encode(h.PublicURL, qrcode.High, 256)
	if err != nil {
		applog.Error(c, "home.qr.fail", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set("Content-Type", "image/png")
	c.Set("Cache-Control", "public, max-age=3600")
	return c.Send(png)
}
