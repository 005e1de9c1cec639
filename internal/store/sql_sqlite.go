package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/bitwarden2keepass/internal/config"
	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/migrations"
)

// Open opens an existing store file and verifies its credentials.
//
// Returns [ErrStoreNotFound] when the file does not exist,
// [ErrStoreNotInitialized] when the file carries no credential record, and
// [ErrBadCredentials] when the password or key file does not match.
func Open(ctx context.Context, cfg config.Database, log *logger.Logger) (Store, error) {
	if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, cfg.Path)
	}

	conn, err := connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	keyfile, err := readKeyfile(cfg.Keyfile)
	if err != nil {
		conn.Close()
		return nil, err
	}

	verifier := newCredentialVerifier()

	salt, err := readMetaValue(ctx, conn, metaKeySalt)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: missing %s", ErrStoreNotInitialized, metaKeySalt)
	}

	expected, err := readMetaValue(ctx, conn, metaKeyVerifier)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: missing %s", ErrStoreNotInitialized, metaKeyVerifier)
	}

	if !verifier.Matches(expected, cfg.Password, keyfile, salt) {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrBadCredentials, cfg.Path)
	}

	return newSQLiteStore(ctx, conn, log)
}

// Create initialises a new store file: schema, credential record, and the
// root group. The file must not carry an initialised store already; a
// half-written file (e.g. from an earlier crash) is reinitialised.
func Create(ctx context.Context, cfg config.Database, log *logger.Logger) (Store, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "store.Create").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	keyfile, err := readKeyfile(cfg.Keyfile)
	if err != nil {
		conn.Close()
		return nil, err
	}

	verifier := newCredentialVerifier()

	salt, err := verifier.GenerateSalt()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error generating credential salt: %w", err)
	}

	if err = writeMetaValue(ctx, conn, metaKeySalt, salt); err != nil {
		conn.Close()
		return nil, err
	}

	if err = writeMetaValue(ctx, conn, metaKeyVerifier, verifier.Derive(cfg.Password, keyfile, salt)); err != nil {
		conn.Close()
		return nil, err
	}

	if err = createRootGroup(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return newSQLiteStore(ctx, conn, log)
}

// connect opens the SQLite connection, pings it, and brings the schema up
// to date.
func connect(ctx context.Context, cfg config.Database, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "store.connect").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.connect").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "store.connect").Msg("error migrating database schema")
		conn.Close()
		return nil, err
	}

	log.Debug().Str("func", "store.connect").Str("path", cfg.Path).Msg("connected to database successfully")

	return conn, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// readKeyfile loads the key file content, or returns nil when no key file
// is configured.
func readKeyfile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading key file: %w", err)
	}

	return content, nil
}

func readMetaValue(ctx context.Context, conn *sql.DB, key string) ([]byte, error) {
	var value []byte
	err := conn.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		return nil, fmt.Errorf("%w: meta key %q: %w", ErrScanningRow, key, err)
	}

	return value, nil
}

func writeMetaValue(ctx context.Context, conn *sql.DB, key string, value []byte) error {
	_, err := conn.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value;`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: meta key %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

// createRootGroup inserts the root group unless the store already has one.
func createRootGroup(ctx context.Context, conn *sql.DB) error {
	var count int
	err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups WHERE parent_id IS NULL;`).Scan(&count)
	if err != nil {
		return fmt.Errorf("%w: root group lookup: %w", ErrScanningRow, err)
	}

	if count > 0 {
		return nil
	}

	generator := newUUIDGenerator()
	_, err = conn.ExecContext(ctx,
		`INSERT INTO groups (uuid, parent_id, name) VALUES (?, NULL, ?);`,
		generator.Generate(), "Root",
	)
	if err != nil {
		return fmt.Errorf("%w: root group insert: %w", ErrExecutingStatement, err)
	}

	return nil
}
