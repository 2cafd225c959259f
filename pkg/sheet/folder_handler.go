package sheet

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

type CreateFolderDTO struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

type FolderColorDTO struct {
	Color string `json:"color"`
}

type MoveFolderDTO struct {
	ParentID *string `json:"parentId"`
}

type DeleteFoldersDTO struct {
	IDs             []string `json:"ids"`
	ContextFolderID *string  `json:"contextFolderId"`
}

type FolderHandler struct {
	service Service
}

func NewFolderHandler(service Service) *FolderHandler {
	return &FolderHandler{service}
}

func (handler *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	folders, err := handler.service.ListFolders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if folders == nil {
		folders = []budget.Folder{}
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(folders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new folder")
	w.Header().Set("Content-Type", "application/json")

	var dto CreateFolderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	folder, err := handler.service.CreateFolder(r.Context(), dto.Name, dto.ParentID)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, "Folder name must not be empty", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(folder); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	folderId := mux.Vars(r)["folderId"]

	var dto RenameDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	folder, err := handler.service.RenameFolder(r.Context(), folderId, dto.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			http.Error(w, "Folder name must not be empty", http.StatusBadRequest)
		case errors.Is(err, ErrFolderNotFound):
			http.Error(w, "Folder not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(folder); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FolderHandler) SetFolderColor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	folderId := mux.Vars(r)["folderId"]

	var dto FolderColorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	folder, err := handler.service.SetFolderColor(r.Context(), folderId, dto.Color)
	if err != nil {
		if errors.Is(err, ErrFolderNotFound) {
			http.Error(w, "Folder not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(folder); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FolderHandler) MoveFolder(w http.ResponseWriter, r *http.Request) {
	folderId := mux.Vars(r)["folderId"]

	var dto MoveFolderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.MoveFolder(r.Context(), folderId, dto.ParentID); err != nil {
		switch {
		case errors.Is(err, ErrFolderCycle):
			http.Error(w, "A folder cannot be moved into itself or one of its sub-folders", http.StatusConflict)
		case errors.Is(err, ErrFolderNotFound):
			http.Error(w, "Folder not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *FolderHandler) DeleteFolders(w http.ResponseWriter, r *http.Request) {
	var dto DeleteFoldersDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteFolders(r.Context(), dto.IDs, dto.ContextFolderID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
