package store

import "errors"

// Sentinel errors returned by store operations to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreNotFound is returned by [Open] when the store file does not
	// exist yet. Callers typically react by calling [Create].
	ErrStoreNotFound = errors.New("store file does not exist")

	// ErrBadCredentials is returned by [Open] when the supplied password or
	// key file does not match the credential verifier stored in the file.
	ErrBadCredentials = errors.New("wrong credentials for store")

	// ErrDuplicateTitle is returned by AddEntry when the destination group
	// already contains an entry with the requested title.
	ErrDuplicateTitle = errors.New("entry title already exists in group")

	// ErrGroupNotFound is returned when a group handle does not resolve to
	// an existing group.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrStoreNotInitialized is returned when the store file exists but
	// carries no credential verifier, indicating a corrupt or foreign file.
	ErrStoreNotInitialized = errors.New("store file is not initialized")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination value fails.
	ErrScanningRow = errors.New("failed to scan row")
)
