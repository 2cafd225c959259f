package app

import (
	"time"

	"github.com/budgetmaster/budgetmaster/internal/config"
	"github.com/budgetmaster/budgetmaster/internal/utils"
	"github.com/budgetmaster/budgetmaster/pkg/insights"
	"github.com/budgetmaster/budgetmaster/pkg/sheet"
	"github.com/budgetmaster/budgetmaster/pkg/summary"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	SheetRepo     sheet.Repository
	SheetService  sheet.Service
	SheetHandler  *sheet.Handler
	FolderHandler *sheet.FolderHandler

	CsvSummaryRenderer *summary.CsvSummaryRendererImpl
	SummaryHandler     *summary.Handler

	InsightsClient  insights.Client
	InsightsService insights.Service
	InsightsHandler *insights.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(repo sheet.Repository, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.SheetRepo = repo
	deps.SheetService = sheet.NewService(deps.SheetRepo, deps.Clock)
	deps.SheetHandler = sheet.NewHandler(deps.SheetService)
	deps.FolderHandler = sheet.NewFolderHandler(deps.SheetService)

	deps.CsvSummaryRenderer = summary.NewCsvSummaryRenderer()
	deps.SummaryHandler = summary.NewHandler(deps.SheetService.AllSheets, deps.SheetService.GetSheet, deps.CsvSummaryRenderer)

	deps.InsightsClient = insights.NewGeminiClient(insights.ClientOptions{
		APIKey:  cfg.Insights.APIKey,
		Model:   cfg.Insights.Model,
		BaseURL: cfg.Insights.BaseURL,
		Timeout: time.Duration(cfg.Insights.TimeoutSeconds) * time.Second,
	})
	deps.InsightsService = insights.NewService(deps.SheetService.GetSheet, deps.InsightsClient, cfg.Insights.APIKey)
	deps.InsightsHandler = insights.NewHandler(deps.InsightsService)

	return deps
}
