package handlers

import (
	"refind/internal/config"
	"refind/internal/repos"
	"refind/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler   *HomeHandler
	ReportHandler *ReportHandler
	ClaimHandler  *ClaimHandler
	AdminHandler  *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	itemRepo := repos.NewItemRepo(db)

	reportSvc := services.NewReportService(itemRepo)
	matchSvc := services.NewMatchService(itemRepo)
	claimSvc := services.NewClaimService(itemRepo)

	return &Deps{
		HomeHandler:   &HomeHandler{PublicURL: cfg.PublicURL},
		ReportHandler: &ReportHandler{Reports: reportSvc, Matches: matchSvc},
		ClaimHandler:  &ClaimHandler{Claims: claimSvc},
		AdminHandler:  &AdminHandler{Items: itemRepo},
	}
}
