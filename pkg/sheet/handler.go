package sheet

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

// Sheets travel over the wire in the same JSON shape they are stored
// in, so budget.BudgetMonth doubles as its own DTO.

type CreateSheetDTO struct {
	FolderID *string `json:"folderId"`
}

type DuplicateSheetDTO struct {
	Name     string          `json:"name,omitempty"`
	FolderID json.RawMessage `json:"folderId,omitempty"`
}

type RenameDTO struct {
	Name string `json:"name"`
}

type MoveSheetsDTO struct {
	IDs      []string `json:"ids"`
	FolderID *string  `json:"folderId"`
}

type DeleteSheetsDTO struct {
	IDs []string `json:"ids"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) ListSheets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var (
		sheets []budget.BudgetMonth
		err    error
	)
	if r.URL.Query().Has("folderId") {
		folderID := folderIDFromQuery(r.URL.Query().Get("folderId"))
		sheets, err = handler.service.ListSheets(r.Context(), folderID)
	} else {
		sheets, err = handler.service.AllSheets(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sheets); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sheetId := mux.Vars(r)["sheetId"]

	sheet, err := handler.service.GetSheet(r.Context(), sheetId)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			http.Error(w, "Sheet not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sheet); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) CreateSheet(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new budget sheet")
	w.Header().Set("Content-Type", "application/json")

	var dto CreateSheetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.CreateBlank(r.Context(), dto.FolderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) UpdateSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sheetId := mux.Vars(r)["sheetId"]

	var sheet budget.BudgetMonth
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sheet.ID == "" || sheet.ID != sheetId {
		http.Error(w, "Invalid sheet id in request body", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.UpdateSheet(r.Context(), sheet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) DuplicateSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sheetId := mux.Vars(r)["sheetId"]

	var dto DuplicateSheetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A folderId key in the body (even an explicit null) refiles the
	// duplicate; an absent key keeps the source sheet's folder.
	var folder *FolderRef
	if len(dto.FolderID) > 0 {
		var id *string
		if err := json.Unmarshal(dto.FolderID, &id); err != nil {
			http.Error(w, "Invalid folderId in request body", http.StatusBadRequest)
			return
		}
		folder = &FolderRef{ID: id}
	}

	dup, err := handler.service.Duplicate(r.Context(), sheetId, dto.Name, folder)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			http.Error(w, "Sheet not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dup); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) RenameSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sheetId := mux.Vars(r)["sheetId"]

	var dto RenameDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	renamed, err := handler.service.Rename(r.Context(), sheetId, dto.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			http.Error(w, "Sheet name must not be empty", http.StatusBadRequest)
		case errors.Is(err, ErrSheetNotFound):
			http.Error(w, "Sheet not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(renamed); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) MoveSheets(w http.ResponseWriter, r *http.Request) {
	var dto MoveSheetsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.MoveSheets(r.Context(), dto.IDs, dto.FolderID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSheet is the single-sheet-view deletion endpoint; it refuses
// to remove the last remaining sheet.
func (handler *Handler) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	sheetId := mux.Vars(r)["sheetId"]

	if err := handler.service.DeleteSheetGuarded(r.Context(), sheetId); err != nil {
		switch {
		case errors.Is(err, ErrLastSheet):
			http.Error(w, "You cannot delete the only remaining budget sheet. Please create a new sheet before deleting this one.", http.StatusConflict)
		case errors.Is(err, ErrSheetNotFound):
			http.Error(w, "Sheet not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSheets is the dashboard bulk deletion endpoint; no last-sheet
// guard applies here.
func (handler *Handler) DeleteSheets(w http.ResponseWriter, r *http.Request) {
	var dto DeleteSheetsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteSheets(r.Context(), dto.IDs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// folderIDFromQuery maps the folderId query value to a folder
// reference: an empty value means the root level.
func folderIDFromQuery(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
