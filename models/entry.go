// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GroupID is an opaque handle to a destination group.
type GroupID int64

// EntryID is an opaque handle to a destination entry.
type EntryID int64

// BinaryID is an opaque handle to a stored binary blob.
type BinaryID int64

// EntryDraft carries everything needed to create one destination entry.
// The store owns the entry once created; further configuration happens
// through the store interface using the returned EntryID.
type EntryDraft struct {
	// Title is the entry display title, unique within its group.
	Title string

	// Username is the account identifier. For card items this holds the
	// card number.
	Username string

	// Password is the secret. For card items this holds the security code.
	Password string

	// Notes contains optional free-form notes, nil when unset.
	Notes *string

	// Tags classify the entry (item kind, card brand, "totp").
	Tags []string

	// ExpiryTime is an optional expiration timestamp (card expiry).
	ExpiryTime *time.Time

	// URL is the optional primary URL of the entry.
	URL string
}

// Attribute is one classified custom field ready to be written to a
// destination entry as a custom property.
type Attribute struct {
	// Name is the display-safe, collision-free property name.
	Name string

	// Value is the property value, possibly empty.
	Value string

	// Protected marks the property as sensitive; the destination store
	// keeps protected values masked.
	Protected bool
}
