package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"refind/internal/config"
	"refind/internal/http/handlers"
	applog "refind/internal/log"
	"refind/internal/repos"
	"refind/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the reporter identity if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if rep, err := authSvc.CurrentReporter(sid); err == nil && rep != nil {
				c.Locals("reporter", rep)
				c.Locals("reporterID", rep.ID)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc)

	// Public pages
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/qr.png", deps.HomeHandler.QR)

	// Reporting; the match search after a lost report scans every FOUND
	// record, so it gets its own tighter limiter.
	reportLimiter := limiter.New(limiter.Config{Max: 20, Expiration: time.Minute})
	app.Get("/report-lost", handlers.RequireReporter(authSvc), deps.ReportHandler.LostForm)
	app.Post("/report-lost", handlers.RequireReporter(authSvc), reportLimiter, deps.ReportHandler.ReportLost)
	app.Get("/report-found", handlers.RequireReporter(authSvc), deps.ReportHandler.FoundForm)
	app.Post("/report-found", handlers.RequireReporter(authSvc), reportLimiter, deps.ReportHandler.ReportFound)
	app.Get("/my-found", handlers.RequireReporter(authSvc), deps.ReportHandler.MyFound)

	// Claiming (throttled: the code is a 6-digit secret)
	claimLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|claim"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.claim.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("claim", fiber.Map{"Err": "Too many attempts. Please try again later.", "Code": "", "ItemID": "", "CSRFToken": c.Cookies("csrf_")})
		},
	})
	app.Get("/claim", deps.ClaimHandler.Form)
	app.Post("/claim", claimLimiter, deps.ClaimHandler.Claim)

	// Auth routes (phone login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later.", "CSRFToken": c.Cookies("csrf_")})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin
	app.Get("/admin/login", authH.AdminLoginForm)
	app.Post("/admin/login", authH.AdminLogin)
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/items/:id/delete", deps.AdminHandler.DeleteItem)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
