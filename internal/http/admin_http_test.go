package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"refind/internal/config"
	"refind/internal/domain"
	"refind/internal/http/handlers"
	"refind/internal/repos"
	"refind/internal/services"
)

func newAdminApp(t *testing.T) (*fiber.App, *repos.ItemRepo) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", PublicURL: "http://localhost:8080"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, cfg, authSvc)
	app.Get("/admin/login", authH.AdminLoginForm)
	app.Post("/admin/login", authH.AdminLogin)
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/items/:id/delete", deps.AdminHandler.DeleteItem)

	return app, repos.NewItemRepo(db)
}

func adminLogin(t *testing.T, app *fiber.App) session {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/admin/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}

	form := url.Values{"csrf": {tok}, "email": {"admin@refind.test"}, "password": {"Passw0rd!"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("admin login expected redirect, got %d body=%s", resp.StatusCode, body)
	}
	return session{csrf: tok, sid: extractCookie(resp, "sid")}
}

func TestAdminRequiresLogin(t *testing.T) {
	app, _ := newAdminApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/admin/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous admin expected redirect, got %d", resp.StatusCode)
	}
}

func TestAdminDashboardAndDelete(t *testing.T) {
	app, items := newAdminApp(t)
	s := adminLogin(t, app)

	it := domain.Item{
		ID: "f-1", Kind: domain.KindFound, Title: "Abandoned Report",
		Location: "Hall", Category: "other", ClaimCode: "123456",
	}
	if err := items.Insert(it); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/admin/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Abandoned Report") {
		t.Fatalf("dashboard missing item; body=%s", body)
	}

	resp = postForm(t, app, s, "/admin/items/f-1/delete", url.Values{})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("delete expected redirect, got %d", resp.StatusCode)
	}
	if _, err := items.GetByID("f-1"); err == nil {
		t.Fatal("item should be gone after admin delete")
	}
}
