package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

const (
	monthsCollection  = "months"
	foldersCollection = "folders"
)

// SQLiteStore persists each collection as one JSON document in the
// collections table, replaced wholesale on every save.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) LoadMonths(ctx context.Context) ([]budget.BudgetMonth, bool, error) {
	var months []budget.BudgetMonth
	found, err := s.readCollection(ctx, monthsCollection, &months)
	return months, found, err
}

func (s *SQLiteStore) SaveMonths(ctx context.Context, months []budget.BudgetMonth) error {
	return s.writeCollection(ctx, monthsCollection, months)
}

func (s *SQLiteStore) LoadFolders(ctx context.Context) ([]budget.Folder, bool, error) {
	var folders []budget.Folder
	found, err := s.readCollection(ctx, foldersCollection, &folders)
	return folders, found, err
}

func (s *SQLiteStore) SaveFolders(ctx context.Context, folders []budget.Folder) error {
	return s.writeCollection(ctx, foldersCollection, folders)
}

func (s *SQLiteStore) readCollection(ctx context.Context, name string, out any) (bool, error) {
	var document string
	err := s.db.QueryRowContext(ctx,
		"SELECT document FROM collections WHERE name = ?", name,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	if err := json.Unmarshal([]byte(document), out); err != nil {
		log.Warnf("Stored collection %s is not valid JSON, treating as absent: %v", name, err)
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) writeCollection(ctx context.Context, name string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, document, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT (name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		name, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to store collection %s: %w", name, err)
	}
	return nil
}
