// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultBitwardenPath is the executable name used when no explicit path to
// the Bitwarden CLI is configured. It is resolved through the system PATH.
const DefaultBitwardenPath = "bw"

// StructuredConfig is the top-level configuration container for the
// bitwarden2keepass converter. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Bitwarden holds settings for the source CLI collaborator.
	Bitwarden Bitwarden `envPrefix:"BW_"`

	// Database holds the primary destination store settings.
	Database Database `envPrefix:"DB_"`

	// TOTPDatabase holds the optional secondary store for TOTP material.
	// An empty Path disables the split-database policy.
	TOTPDatabase Database `envPrefix:"TOTP_DB_"`

	// Converter holds behavioral switches of the conversion core.
	Converter Converter

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Bitwarden holds settings for invoking the Bitwarden CLI.
type Bitwarden struct {
	// Session is the session token produced by `bw login` / `bw unlock`.
	// Required; every CLI invocation passes it via --session.
	// Env: BW_SESSION
	Session string `env:"SESSION"`

	// Path is the path to the bw executable. Defaults to "bw" resolved
	// through the system PATH.
	// Env: BW_PATH
	Path string `env:"PATH"`
}

// Database holds access settings for one destination store file.
type Database struct {
	// Path is the store file location. The store is created when the file
	// does not exist yet.
	// Env: DB_PATH / TOTP_DB_PATH
	Path string `env:"PATH"`

	// Password is the store master password.
	// Env: DB_PASSWORD / TOTP_DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Keyfile is an optional path to a key file that participates in
	// credential verification alongside the password.
	// Env: DB_KEYFILE / TOTP_DB_KEYFILE
	Keyfile string `env:"KEYFILE"`
}

// Converter holds switches that change the classification behavior of the
// conversion core.
type Converter struct {
	// SensitiveOnProtected additionally marks custom fields sensitive
	// whenever the source flagged them as hidden, on top of the name-based
	// sensitivity match. Off by default.
	// Env: SENSITIVE_ON_PROTECTED
	SensitiveOnProtected bool `env:"SENSITIVE_ON_PROTECTED"`
}

// Separated reports whether the split-database policy is active, i.e. a
// secondary TOTP store has been configured.
func (cfg *StructuredConfig) Separated() bool {
	return cfg.TOTPDatabase.Path != ""
}

// GetStructuredConfig loads, merges, and validates the converter
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
