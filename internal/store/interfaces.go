// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the destination credential store of the
// converter: a hierarchical database of groups, entries, custom properties,
// and binary attachments persisted in a single SQLite file.
//
// A store is opened with [Open] (failing with [ErrStoreNotFound] when the
// file does not exist and [ErrBadCredentials] when the password or key file
// do not match) or initialised with [Create]. All mutations run inside one
// transaction; nothing reaches the file until [Store.Save] commits.
package store

import (
	"context"

	"github.com/MKhiriev/bitwarden2keepass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store is the write interface of one destination database. The converter
// core configures groups and entries exclusively through it and never
// touches persistence details.
type Store interface {
	// RootGroup returns the handle of the pre-existing root group.
	RootGroup(ctx context.Context) (models.GroupID, error)

	// AddGroup creates a new group named name under parent and returns its
	// handle.
	AddGroup(ctx context.Context, parent models.GroupID, name string) (models.GroupID, error)

	// AddEntry creates a new entry in group from draft and returns its
	// handle. Returns [ErrDuplicateTitle] (wrapped) when an entry with the
	// same title already exists in the group.
	AddEntry(ctx context.Context, group models.GroupID, draft models.EntryDraft) (models.EntryID, error)

	// SetCustomProperty sets a named custom property on entry, overwriting
	// any previous value of the same name. Protected properties are stored
	// masked.
	SetCustomProperty(ctx context.Context, entry models.EntryID, name, value string, protected bool) error

	// AddBinary stores a binary blob and returns its handle.
	AddBinary(ctx context.Context, content []byte) (models.BinaryID, error)

	// AddAttachment links a stored binary to entry under the given filename.
	AddAttachment(ctx context.Context, entry models.EntryID, binary models.BinaryID, filename string) error

	// Save commits all accumulated changes to the store file.
	Save(ctx context.Context) error

	// Close releases the underlying database. Uncommitted changes are
	// discarded.
	Close() error
}
