// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/models"
)

// tagSeparator joins entry tags into a single column value.
const tagSeparator = ";"

// sqliteStore is the SQLite implementation of [Store]. All mutations go
// through s.tx; Save commits and opens a fresh transaction so the store
// stays usable afterwards.
type sqliteStore struct {
	db *sql.DB
	tx *sql.Tx

	sb         sq.StatementBuilderType
	classifier *SQLiteErrorClassifier
	uuids      *uuidGenerator

	logger *logger.Logger
}

func newSQLiteStore(ctx context.Context, db *sql.DB, log *logger.Logger) (*sqliteStore, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &sqliteStore{
		db:         db,
		tx:         tx,
		sb:         sq.StatementBuilder,
		classifier: NewSQLiteErrorClassifier(),
		uuids:      newUUIDGenerator(),
		logger:     log,
	}, nil
}

func (s *sqliteStore) RootGroup(ctx context.Context) (models.GroupID, error) {
	query, args, err := s.sb.
		Select("id").
		From("groups").
		Where("parent_id IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = s.tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("%w: root group", ErrGroupNotFound)
		}
		return 0, fmt.Errorf("%w: root group: %w", ErrScanningRow, err)
	}

	return models.GroupID(id), nil
}

func (s *sqliteStore) AddGroup(ctx context.Context, parent models.GroupID, name string) (models.GroupID, error) {
	query, args, err := s.sb.
		Insert("groups").
		Columns("uuid", "parent_id", "name").
		Values(s.uuids.Generate(), int64(parent), name).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.tx.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.AddGroup").
			Str("name", name).
			Msg("failed to insert group")
		return 0, fmt.Errorf("%w: group %q: %w", ErrExecutingStatement, name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: group %q: %w", ErrExecutingStatement, name, err)
	}

	return models.GroupID(id), nil
}

func (s *sqliteStore) AddEntry(ctx context.Context, group models.GroupID, draft models.EntryDraft) (models.EntryID, error) {
	query, args, err := s.sb.
		Insert("entries").
		Columns("uuid", "group_id", "title", "username", "password", "notes", "url", "tags", "expiry_time").
		Values(
			s.uuids.Generate(),
			int64(group),
			draft.Title,
			draft.Username,
			draft.Password,
			draft.Notes,
			draft.URL,
			strings.Join(draft.Tags, tagSeparator),
			draft.ExpiryTime,
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.tx.ExecContext(ctx, query, args...)
	if err != nil {
		if s.classifier.Classify(err) == DuplicateKey {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateTitle, draft.Title)
		}

		s.logger.Err(err).
			Str("func", "sqliteStore.AddEntry").
			Str("title", draft.Title).
			Msg("failed to insert entry")
		return 0, fmt.Errorf("%w: entry %q: %w", ErrExecutingStatement, draft.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: entry %q: %w", ErrExecutingStatement, draft.Title, err)
	}

	return models.EntryID(id), nil
}

func (s *sqliteStore) SetCustomProperty(ctx context.Context, entry models.EntryID, name, value string, protected bool) error {
	query, args, err := s.sb.
		Insert("entry_attributes").
		Columns("entry_id", "name", "value", "protected").
		Values(int64(entry), name, value, protected).
		Suffix("ON CONFLICT (entry_id, name) DO UPDATE SET value = excluded.value, protected = excluded.protected").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.SetCustomProperty").
			Str("name", name).
			Msg("failed to upsert custom property")
		return fmt.Errorf("%w: property %q: %w", ErrExecutingStatement, name, err)
	}

	return nil
}

func (s *sqliteStore) AddBinary(ctx context.Context, content []byte) (models.BinaryID, error) {
	query, args, err := s.sb.
		Insert("binaries").
		Columns("content").
		Values(content).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.tx.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.AddBinary").
			Int("size", len(content)).
			Msg("failed to insert binary")
		return 0, fmt.Errorf("%w: binary: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: binary: %w", ErrExecutingStatement, err)
	}

	return models.BinaryID(id), nil
}

func (s *sqliteStore) AddAttachment(ctx context.Context, entry models.EntryID, binary models.BinaryID, filename string) error {
	query, args, err := s.sb.
		Insert("entry_binaries").
		Columns("entry_id", "binary_id", "filename").
		Values(int64(entry), int64(binary), filename).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.AddAttachment").
			Str("filename", filename).
			Msg("failed to insert attachment link")
		return fmt.Errorf("%w: attachment %q: %w", ErrExecutingStatement, filename, err)
	}

	return nil
}

func (s *sqliteStore) Save(ctx context.Context) error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	// Reopen so the store stays usable after a save.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	s.tx = tx

	return nil
}

func (s *sqliteStore) Close() error {
	if s.tx != nil {
		// Discard anything not saved.
		_ = s.tx.Rollback()
		s.tx = nil
	}

	return s.db.Close()
}
