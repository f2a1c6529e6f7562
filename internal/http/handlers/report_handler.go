package handlers

import (
	"refind/internal/domain"
	applog "refind/internal/log"
	"refind/internal/match"
	"refind/internal/services"
	"refind/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	Reports *services.ReportService
	Matches *services.MatchService
}

func (h *ReportHandler) LostForm(c *fiber.Ctx) error {
	return render(c, "report_lost", fiber.Map{"Categories": domain.Categories})
}

func (h *ReportHandler) FoundForm(c *fiber.Ctx) error {
	return render(c, "report_found", fiber.Map{"Categories": domain.Categories})
}

func reportInput(c *fiber.Ctx) (services.ReportInput, string) {
	title, ok := validate.Title(c.FormValue("title"))
	if !ok {
		return services.ReportInput{}, "Enter an item title (max 100 characters)"
	}
	location, ok := validate.Location(c.FormValue("location"))
	if !ok {
		return services.ReportInput{}, "Enter where the item was lost or found"
	}
	category, ok := validate.Category(c.FormValue("category"))
	if !ok {
		return services.ReportInput{}, "Pick a category"
	}
	return services.ReportInput{
		Title:       title,
		Location:    location,
		Category:    category,
		Description: validate.Description(c.FormValue("description")),
	}, ""
}

// ReportLost files the standing record and immediately surfaces ranked FOUND
// candidates, each annotated with its claim code, item id and the finder's
// contact number.
func (h *ReportHandler) ReportLost(c *fiber.Ctx) error {
	rep, _ := c.Locals("reporter").(*domain.Reporter)

	in, msg := reportInput(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "report_lost"})
		return c.Status(400).Render("report_lost", fiber.Map{"Err": msg, "Categories": domain.Categories, "CSRFToken": c.Cookies("csrf_")})
	}

	it, err := h.Reports.ReportLost(rep, in)
	if err != nil {
		applog.Error(c, "report.lost.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save your report. Please try again."})
	}
	applog.Audit(c, "report.lost", map[string]any{"item_id": it.ID})

	matches, err := h.Matches.FindMatches(match.Query{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
	})
	if err != nil {
		applog.Error(c, "match.search.fail", err, map[string]any{"item_id": it.ID})
		// The report itself is saved; show it without matches rather than fail.
		matches = nil
	}

	return render(c, "matches", fiber.Map{"Item": it, "Matches": matches, "Count": len(matches)})
}

// ReportFound issues the claim code and shows it once, together with the item
// id the claimant will need.
func (h *ReportHandler) ReportFound(c *fiber.Ctx) error {
	rep, _ := c.Locals("reporter").(*domain.Reporter)

	in, msg := reportInput(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "report_found"})
		return c.Status(400).Render("report_found", fiber.Map{"Err": msg, "Categories": domain.Categories, "CSRFToken": c.Cookies("csrf_")})
	}

	it, err := h.Reports.ReportFound(rep, in)
	if err != nil {
		applog.Error(c, "report.found.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save your report. Please try again."})
	}
	applog.Audit(c, "report.found", map[string]any{"item_id": it.ID})

	return render(c, "found_saved", fiber.Map{"Item": it})
}

// MyFound is the finder's dashboard of outstanding FOUND records.
func (h *ReportHandler) MyFound(c *fiber.Ctx) error {
	rep, _ := c.Locals("reporter").(*domain.Reporter)
	items, err := h.Reports.MyFound(rep)
	if err != nil {
		applog.Error(c, "report.myfound.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your found items"})
	}
	return render(c, "my_found", fiber.Map{"Items": items})
}
