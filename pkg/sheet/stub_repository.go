package sheet

import (
	"context"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	months       []budget.BudgetMonth
	folders      []budget.Folder
	monthsFound  bool
	foldersFound bool
	failNext     error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

// SeedMonths installs a stored months collection, marking it as found.
func (s *StubRepository) SeedMonths(months []budget.BudgetMonth) {
	s.months = months
	s.monthsFound = true
}

// SeedFolders installs a stored folders collection, marking it as found.
func (s *StubRepository) SeedFolders(folders []budget.Folder) {
	s.folders = folders
	s.foldersFound = true
}

// FailNext makes the next repository call return err once.
func (s *StubRepository) FailNext(err error) {
	s.failNext = err
}

func (s *StubRepository) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *StubRepository) LoadMonths(ctx context.Context) ([]budget.BudgetMonth, bool, error) {
	if err := s.takeFailure(); err != nil {
		return nil, false, err
	}
	return append([]budget.BudgetMonth(nil), s.months...), s.monthsFound, nil
}

func (s *StubRepository) SaveMonths(ctx context.Context, months []budget.BudgetMonth) error {
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.months = append([]budget.BudgetMonth(nil), months...)
	s.monthsFound = true
	return nil
}

func (s *StubRepository) LoadFolders(ctx context.Context) ([]budget.Folder, bool, error) {
	if err := s.takeFailure(); err != nil {
		return nil, false, err
	}
	return append([]budget.Folder(nil), s.folders...), s.foldersFound, nil
}

func (s *StubRepository) SaveFolders(ctx context.Context, folders []budget.Folder) error {
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.folders = append([]budget.Folder(nil), folders...)
	s.foldersFound = true
	return nil
}

func (s *StubRepository) Cleanup() {
	s.months = nil
	s.folders = nil
	s.monthsFound = false
	s.foldersFound = false
	s.failNext = nil
}
