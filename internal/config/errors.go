package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingSession indicates that no Bitwarden session token was
	// supplied (BW_SESSION / -bw-session).
	ErrMissingSession = errors.New("bitwarden session token is required")

	// ErrBitwardenCLINotFound indicates that the Bitwarden CLI executable
	// could not be resolved. Did you set the correct -bw-path?
	ErrBitwardenCLINotFound = errors.New("bitwarden-cli was not found or not executable")

	// ErrInvalidDatabaseConfigs indicates invalid primary store settings
	// (missing path or password).
	ErrInvalidDatabaseConfigs = errors.New("invalid database configuration")

	// ErrInvalidTOTPDatabaseConfigs indicates that a TOTP store path was
	// configured without a password.
	ErrInvalidTOTPDatabaseConfigs = errors.New("invalid totp database configuration")

	// ErrKeyfileNotReadable indicates that a configured key file does not
	// exist or cannot be opened for reading.
	ErrKeyfileNotReadable = errors.New("key file is not readable")
)
