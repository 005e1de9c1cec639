package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [SQLiteErrorClassifier.Classify]. It tells the caller which domain
// condition a failed database operation represents.
type ErrorClassification int

const (
	// Unclassified is the default for errors that carry no recognised
	// SQLite code. Such errors are wrapped and propagated as-is.
	Unclassified ErrorClassification = iota

	// DuplicateKey indicates a unique-constraint violation. For the entries
	// table this means a title collision within one group.
	DuplicateKey

	// ConstraintViolation indicates any other integrity-constraint failure
	// (foreign key, not-null, check).
	ConstraintViolation
)

// SQLiteErrorClassifier inspects errors returned by the mattn/go-sqlite3
// driver and maps them to an [ErrorClassification]. It is the typed
// replacement for matching on error message text.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify attempts to unwrap err as a sqlite3.Error and delegates to
// [ClassifySQLiteError]. If err is nil or not a SQLite driver error,
// [Unclassified] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return Unclassified
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on its extended result code.
// See https://www.sqlite.org/rescode.html for the full list.
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return DuplicateKey
	}

	if sqliteErr.Code == sqlite3.ErrConstraint {
		return ConstraintViolation
	}

	return Unclassified
}
