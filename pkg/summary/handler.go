package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
	"github.com/budgetmaster/budgetmaster/pkg/sheet"
)

// SheetsProvider supplies every stored sheet in storage order.
type SheetsProvider func(ctx context.Context) ([]budget.BudgetMonth, error)

// SheetFetcher supplies one migrated sheet by id.
type SheetFetcher func(ctx context.Context, id string) (budget.BudgetMonth, error)

type SummaryDTO struct {
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Remaining        float64 `json:"remaining"`
	OutgoingPercent  float64 `json:"outgoingPercent"`
	RemainingPercent float64 `json:"remainingPercent"`
}

type Handler struct {
	sheets      SheetsProvider
	fetchSheet  SheetFetcher
	csvRenderer SummaryRenderer
}

// SummaryRenderer turns a rollup into an exportable text format.
type SummaryRenderer interface {
	RenderRollup(stats RollupStats) (string, error)
}

func NewHandler(sheets SheetsProvider, fetchSheet SheetFetcher, csvRenderer SummaryRenderer) *Handler {
	return &Handler{sheets, fetchSheet, csvRenderer}
}

func (handler *Handler) GetSheetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sheetId := mux.Vars(r)["sheetId"]

	month, err := handler.fetchSheet(r.Context(), sheetId)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			http.Error(w, "Sheet not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s := Summarize(month)
	dto := SummaryDTO{
		Income:           s.Income,
		Expenses:         s.Expenses,
		Remaining:        s.Remaining,
		OutgoingPercent:  s.OutgoingPercent(),
		RemainingPercent: s.RemainingPercent(),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetRollup(w http.ResponseWriter, r *http.Request) {
	months, err := handler.sheets(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	stats := Rollup(months)

	if r.Header.Get("Accept") == "text/csv" {
		handler.writeCsv(w, stats)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetRollupCsv is the download endpoint: always CSV, no negotiation.
func (handler *Handler) GetRollupCsv(w http.ResponseWriter, r *http.Request) {
	months, err := handler.sheets(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	handler.writeCsv(w, Rollup(months))
}

func (handler *Handler) writeCsv(w http.ResponseWriter, stats RollupStats) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	csv, err := handler.csvRenderer.RenderRollup(stats)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := w.Write([]byte(csv)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
