package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/internal/utils"
	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrFolderNotFound = errors.New("folder not found")
	ErrLastSheet      = errors.New("cannot delete the only remaining sheet")
	ErrEmptyName      = errors.New("name must not be empty")
	ErrFolderCycle    = errors.New("folder cannot be moved into itself or a descendant")
)

// FolderRef distinguishes "leave the folder as it is" (nil ref) from
// "file into this folder" (non-nil ref, where a nil ID means root).
type FolderRef struct {
	ID *string
}

type Service interface {
	AllSheets(ctx context.Context) ([]budget.BudgetMonth, error)
	ListSheets(ctx context.Context, folderID *string) ([]budget.BudgetMonth, error)
	GetSheet(ctx context.Context, id string) (budget.BudgetMonth, error)
	CreateBlank(ctx context.Context, folderID *string) (budget.BudgetMonth, error)
	Duplicate(ctx context.Context, sourceID, name string, folder *FolderRef) (budget.BudgetMonth, error)
	UpdateSheet(ctx context.Context, month budget.BudgetMonth) (budget.BudgetMonth, error)
	Rename(ctx context.Context, id, name string) (budget.BudgetMonth, error)
	MoveSheets(ctx context.Context, ids []string, folderID *string) error
	DeleteSheets(ctx context.Context, ids []string) error
	DeleteSheetGuarded(ctx context.Context, id string) error

	ListFolders(ctx context.Context) ([]budget.Folder, error)
	CreateFolder(ctx context.Context, name string, parentID *string) (budget.Folder, error)
	RenameFolder(ctx context.Context, id, name string) (budget.Folder, error)
	SetFolderColor(ctx context.Context, id, color string) (budget.Folder, error)
	MoveFolder(ctx context.Context, id string, parentID *string) error
	DeleteFolders(ctx context.Context, ids []string, contextFolderID *string) error
}

// ServiceImpl owns the persisted collections. Every mutation is a full
// load-modify-save cycle over the repository blobs; the mutex keeps
// concurrent requests from interleaving those cycles.
type ServiceImpl struct {
	mu    sync.Mutex
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

// loadSheets returns the migrated months collection, seeding the
// initial sheet on first run. Migration runs on every load so that a
// sheet saved by any previous version of the app is display-ready.
func (s *ServiceImpl) loadSheets(ctx context.Context) ([]budget.BudgetMonth, error) {
	months, found, err := s.repo.LoadMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheets: %w", err)
	}
	if !found {
		log.Info("no stored sheets found, seeding initial sheet")
		seeded := []budget.BudgetMonth{budget.NewInitialMonth(s.clock)}
		if err := s.repo.SaveMonths(ctx, seeded); err != nil {
			return nil, fmt.Errorf("failed to store initial sheet: %w", err)
		}
		return seeded, nil
	}
	for i, m := range months {
		months[i] = budget.Migrate(m)
	}
	return months, nil
}

func (s *ServiceImpl) AllSheets(ctx context.Context) ([]budget.BudgetMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSheets(ctx)
}

func (s *ServiceImpl) ListSheets(ctx context.Context, folderID *string) ([]budget.BudgetMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]budget.BudgetMonth, 0, len(months))
	for _, m := range months {
		if sameFolder(m.FolderID, folderID) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *ServiceImpl) GetSheet(ctx context.Context, id string) (budget.BudgetMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return budget.BudgetMonth{}, err
	}
	idx := findSheet(months, id)
	if idx < 0 {
		return budget.BudgetMonth{}, ErrSheetNotFound
	}
	return months[idx], nil
}

func (s *ServiceImpl) CreateBlank(ctx context.Context, folderID *string) (budget.BudgetMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return budget.BudgetMonth{}, err
	}
	sheet := budget.NewBlankMonth(s.clock, folderID)
	months = append(months, sheet)
	if err := s.repo.SaveMonths(ctx, months); err != nil {
		return budget.BudgetMonth{}, fmt.Errorf("failed to store new sheet: %w", err)
	}
	return sheet, nil
}

func (s *ServiceImpl) Duplicate(ctx context.Context, sourceID, name string, folder *FolderRef) (budget.BudgetMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return budget.BudgetMonth{}, err
	}
	idx := findSheet(months, sourceID)
	if idx < 0 {
		return budget.BudgetMonth{}, ErrSheetNotFound
	}

	dup := budget.Clone(months[idx])
	if strings.TrimSpace(name) != "" {
		dup.Name = name
	}
	if folder != nil {
		dup.FolderID = folder.ID
	}
	months = append(months, dup)
	if err := s.repo.SaveMonths(ctx, months); err != nil {
		return budget.BudgetMonth{}, fmt.Errorf("failed to store duplicated sheet: %w", err)
	}
	return dup, nil
}

// UpdateSheet replaces the stored sheet wholesale. A sheet not yet in
// the collection is appended, matching the original save behavior.
func (s *ServiceImpl) UpdateSheet(ctx context.Context, month budget.BudgetMonth) (budget.BudgetMonth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return budget.BudgetMonth{}, err
	}
	month = budget.Migrate(month)
	if idx := findSheet(months, month.ID); idx >= 0 {
		months[idx] = month
	} else {
		months = append(months, month)
	}
	if err := s.repo.SaveMonths(ctx, months); err != nil {
		return budget.BudgetMonth{}, fmt.Errorf("failed to store sheet: %w", err)
	}
	return month, nil
}

func (s *ServiceImpl) Rename(ctx context.Context, id, name string) (budget.BudgetMonth, error) {
	if strings.TrimSpace(name) == "" {
		return budget.BudgetMonth{}, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return budget.BudgetMonth{}, err
	}
	idx := findSheet(months, id)
	if idx < 0 {
		return budget.BudgetMonth{}, ErrSheetNotFound
	}
	months[idx].Name = strings.TrimSpace(name)
	if err := s.repo.SaveMonths(ctx, months); err != nil {
		return budget.BudgetMonth{}, fmt.Errorf("failed to store renamed sheet: %w", err)
	}
	return months[idx], nil
}

func (s *ServiceImpl) MoveSheets(ctx context.Context, ids []string, folderID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return err
	}
	moving := toSet(ids)
	for i, m := range months {
		if moving[m.ID] {
			months[i].FolderID = folderID
		}
	}
	if err := s.repo.SaveMonths(ctx, months); err != nil {
		return fmt.Errorf("failed to store moved sheets: %w", err)
	}
	return nil
}

func (s *ServiceImpl) DeleteSheets(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return err
	}
	deleting := toSet(ids)
	remaining := make([]budget.BudgetMonth, 0, len(months))
	for _, m := range months {
		if !deleting[m.ID] {
			remaining = append(remaining, m)
		}
	}
	if err := s.repo.SaveMonths(ctx, remaining); err != nil {
		return fmt.Errorf("failed to store sheets after delete: %w", err)
	}
	return nil
}

// DeleteSheetGuarded is the single-sheet-view deletion path: the last
// remaining sheet may never be removed.
func (s *ServiceImpl) DeleteSheetGuarded(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	months, err := s.loadSheets(ctx)
	if err != nil {
		return err
	}
	if len(months) <= 1 {
		log.Warnf("refusing to delete the only remaining sheet (%s)", id)
		return ErrLastSheet
	}
	idx := findSheet(months, id)
	if idx < 0 {
		return ErrSheetNotFound
	}
	months = append(months[:idx], months[idx+1:]...)
	if err := s.repo.SaveMonths(ctx, months); err != nil {
		return fmt.Errorf("failed to store sheets after delete: %w", err)
	}
	return nil
}

func (s *ServiceImpl) ListFolders(ctx context.Context) ([]budget.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	folders, _, err := s.repo.LoadFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}
	return folders, nil
}

func (s *ServiceImpl) CreateFolder(ctx context.Context, name string, parentID *string) (budget.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return budget.Folder{}, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, _, err := s.repo.LoadFolders(ctx)
	if err != nil {
		return budget.Folder{}, fmt.Errorf("failed to load folders: %w", err)
	}
	folder := budget.Folder{ID: uuid.NewString(), Name: strings.TrimSpace(name), ParentID: parentID}
	folders = append(folders, folder)
	if err := s.repo.SaveFolders(ctx, folders); err != nil {
		return budget.Folder{}, fmt.Errorf("failed to store new folder: %w", err)
	}
	return folder, nil
}

func (s *ServiceImpl) RenameFolder(ctx context.Context, id, name string) (budget.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return budget.Folder{}, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, _, err := s.repo.LoadFolders(ctx)
	if err != nil {
		return budget.Folder{}, fmt.Errorf("failed to load folders: %w", err)
	}
	idx := findFolder(folders, id)
	if idx < 0 {
		return budget.Folder{}, ErrFolderNotFound
	}
	folders[idx].Name = strings.TrimSpace(name)
	if err := s.repo.SaveFolders(ctx, folders); err != nil {
		return budget.Folder{}, fmt.Errorf("failed to store renamed folder: %w", err)
	}
	return folders[idx], nil
}

func (s *ServiceImpl) SetFolderColor(ctx context.Context, id, color string) (budget.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, _, err := s.repo.LoadFolders(ctx)
	if err != nil {
		return budget.Folder{}, fmt.Errorf("failed to load folders: %w", err)
	}
	idx := findFolder(folders, id)
	if idx < 0 {
		return budget.Folder{}, ErrFolderNotFound
	}
	folders[idx].Color = color
	if err := s.repo.SaveFolders(ctx, folders); err != nil {
		return budget.Folder{}, fmt.Errorf("failed to store folder: %w", err)
	}
	return folders[idx], nil
}

// MoveFolder reparents a folder, refusing any move that would create a
// cycle in the tree.
func (s *ServiceImpl) MoveFolder(ctx context.Context, id string, parentID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, _, err := s.repo.LoadFolders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load folders: %w", err)
	}
	idx := findFolder(folders, id)
	if idx < 0 {
		return ErrFolderNotFound
	}
	if wouldCycle(folders, id, parentID) {
		return ErrFolderCycle
	}
	folders[idx].ParentID = parentID
	if err := s.repo.SaveFolders(ctx, folders); err != nil {
		return fmt.Errorf("failed to store moved folder: %w", err)
	}
	return nil
}

// DeleteFolders removes the named folders. Contained sheets and
// sub-folders are reparented to the folder the deletion was invoked
// from, never deleted along with their parent.
func (s *ServiceImpl) DeleteFolders(ctx context.Context, ids []string, contextFolderID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleting := toSet(ids)

	months, err := s.loadSheets(ctx)
	if err != nil {
		return err
	}
	monthsChanged := false
	for i, m := range months {
		if m.FolderID != nil && deleting[*m.FolderID] {
			months[i].FolderID = contextFolderID
			monthsChanged = true
		}
	}

	folders, _, err := s.repo.LoadFolders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load folders: %w", err)
	}
	remaining := make([]budget.Folder, 0, len(folders))
	for _, f := range folders {
		if deleting[f.ID] {
			continue
		}
		if f.ParentID != nil && deleting[*f.ParentID] {
			f.ParentID = contextFolderID
		}
		remaining = append(remaining, f)
	}

	if monthsChanged {
		if err := s.repo.SaveMonths(ctx, months); err != nil {
			return fmt.Errorf("failed to store reparented sheets: %w", err)
		}
	}
	if err := s.repo.SaveFolders(ctx, remaining); err != nil {
		return fmt.Errorf("failed to store folders after delete: %w", err)
	}
	return nil
}

// wouldCycle reports whether parenting folder id under newParentID
// creates a loop, walking up the ancestry from the proposed parent.
func wouldCycle(folders []budget.Folder, id string, newParentID *string) bool {
	byID := make(map[string]budget.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	seen := map[string]bool{}
	for current := newParentID; current != nil; {
		if *current == id {
			return true
		}
		if seen[*current] {
			// already looping without us, refuse to extend it
			return true
		}
		seen[*current] = true
		parent, ok := byID[*current]
		if !ok {
			return false
		}
		current = parent.ParentID
	}
	return false
}

func sameFolder(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func findSheet(months []budget.BudgetMonth, id string) int {
	for i, m := range months {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func findFolder(folders []budget.Folder, id string) int {
	for i, f := range folders {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
