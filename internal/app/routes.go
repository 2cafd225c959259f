package app

import (
	"github.com/gorilla/mux"

	"github.com/budgetmaster/budgetmaster/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Budget sheets
	r.HandleFunc("/api/sheet", deps.SheetHandler.ListSheets).Methods("GET")
	r.HandleFunc("/api/sheet", deps.SheetHandler.CreateSheet).Methods("POST")
	r.HandleFunc("/api/sheet/move", deps.SheetHandler.MoveSheets).Methods("POST")
	r.HandleFunc("/api/sheet/delete", deps.SheetHandler.DeleteSheets).Methods("POST")
	r.HandleFunc("/api/sheet/{sheetId}", deps.SheetHandler.GetSheet).Methods("GET")
	r.HandleFunc("/api/sheet/{sheetId}", deps.SheetHandler.UpdateSheet).Methods("PUT")
	r.HandleFunc("/api/sheet/{sheetId}", deps.SheetHandler.DeleteSheet).Methods("DELETE")
	r.HandleFunc("/api/sheet/{sheetId}/duplicate", deps.SheetHandler.DuplicateSheet).Methods("POST")
	r.HandleFunc("/api/sheet/{sheetId}/name", deps.SheetHandler.RenameSheet).Methods("PUT")

	// Folders
	r.HandleFunc("/api/folder", deps.FolderHandler.ListFolders).Methods("GET")
	r.HandleFunc("/api/folder", deps.FolderHandler.CreateFolder).Methods("POST")
	r.HandleFunc("/api/folder/delete", deps.FolderHandler.DeleteFolders).Methods("POST")
	r.HandleFunc("/api/folder/{folderId}/name", deps.FolderHandler.RenameFolder).Methods("PUT")
	r.HandleFunc("/api/folder/{folderId}/color", deps.FolderHandler.SetFolderColor).Methods("PUT")
	r.HandleFunc("/api/folder/{folderId}/move", deps.FolderHandler.MoveFolder).Methods("PUT")

	// Summaries
	r.HandleFunc("/api/summary", deps.SummaryHandler.GetRollup).Methods("GET")
	r.HandleFunc("/api/summary/csv", deps.SummaryHandler.GetRollupCsv).Methods("GET")
	r.HandleFunc("/api/sheet/{sheetId}/summary", deps.SummaryHandler.GetSheetSummary).Methods("GET")

	// AI insights
	r.HandleFunc("/api/sheet/{sheetId}/insights", deps.InsightsHandler.GetSheetInsights).Methods("GET")
}
