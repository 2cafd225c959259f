package insights

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/budgetmaster/budgetmaster/pkg/sheet"
)

type InsightsDTO struct {
	Text string `json:"text"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) GetSheetInsights(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sheetId := mux.Vars(r)["sheetId"]

	text, err := handler.service.ForSheet(r.Context(), sheetId)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			http.Error(w, "Sheet not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(InsightsDTO{Text: text}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
