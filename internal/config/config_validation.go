// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"os/exec"
)

// applyDefaults fills in values that have a sensible fallback when no source
// provided them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Bitwarden.Path == "" {
		cfg.Bitwarden.Path = DefaultBitwardenPath
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// converter invariants before any external process is spawned or any store
// file is touched:
//
//   - the Bitwarden session token and CLI executable must be usable;
//   - the primary store path and password must be set;
//   - any configured key file must exist and be readable;
//   - a configured TOTP store must also carry a password.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Bitwarden.Session == "" {
		return ErrMissingSession
	}

	if _, err := exec.LookPath(cfg.Bitwarden.Path); err != nil {
		return fmt.Errorf("%w: %s", ErrBitwardenCLINotFound, cfg.Bitwarden.Path)
	}

	if cfg.Database.Path == "" || cfg.Database.Password == "" {
		return ErrInvalidDatabaseConfigs
	}

	if err := checkKeyfile(cfg.Database.Keyfile); err != nil {
		return err
	}

	if cfg.Separated() {
		if cfg.TOTPDatabase.Password == "" {
			return ErrInvalidTOTPDatabaseConfigs
		}

		if err := checkKeyfile(cfg.TOTPDatabase.Keyfile); err != nil {
			return err
		}
	}

	return nil
}

// checkKeyfile verifies that keyfile (when configured) points to a readable
// regular file.
func checkKeyfile(keyfile string) error {
	if keyfile == "" {
		return nil
	}

	info, err := os.Stat(keyfile)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrKeyfileNotReadable, keyfile)
	}

	f, err := os.Open(keyfile)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrKeyfileNotReadable, keyfile)
	}
	f.Close()

	return nil
}
