// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bitwarden provides the source-side collaborator of the converter:
// a thin client over the Bitwarden CLI (`bw`).
//
// The primary abstraction is [Client], which decouples the conversion core
// from process invocation details. The shipped implementation
// ([NewCLIClient]) spawns the bw executable and decodes its JSON output.
//
// Error values defined in errors.go are attached to process and decoding
// failures so that callers can use [errors.Is] for handling (all of them
// abort the run, per the converter's error taxonomy).
package bitwarden

import (
	"context"

	"github.com/MKhiriev/bitwarden2keepass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bitwarden_mock.go -package=mock

// Client defines read access to an unlocked Bitwarden vault.
type Client interface {
	// ListFolders returns every folder of the vault, including the
	// null-identifier pseudo-folder representing "no folder".
	ListFolders(ctx context.Context) ([]models.Folder, error)

	// ListItems returns every item of the vault.
	ListItems(ctx context.Context) ([]models.Item, error)

	// GetAttachment fetches the raw content of one attachment of an item.
	GetAttachment(ctx context.Context, attachmentID, itemID string) ([]byte, error)
}

// CommandRunner abstracts process invocation so the client can be tested
// without spawning real processes.
type CommandRunner interface {
	// Run executes path with args and returns its standard output. A
	// non-zero exit status is reported as an error carrying the captured
	// standard error output.
	Run(ctx context.Context, path string, args ...string) ([]byte, error)
}
