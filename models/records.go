// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginData holds the login sub-record of an exported item.
// All scalar fields are pointers because the CLI emits explicit nulls.
type LoginData struct {
	// Username is the login identifier used for authentication.
	Username *string `json:"username"`

	// Password is the secret credential associated with the username.
	Password *string `json:"password"`

	// TOTP is an otpauth:// URI or a bare TOTP seed.
	TOTP *string `json:"totp"`

	// URIs defines one or more resources where the credentials apply.
	URIs []LoginURI `json:"uris,omitempty"`
}

// LoginURI represents a single resource associated with a login entry.
type LoginURI struct {
	// URI is the target resource (domain, URL, or application identifier).
	URI *string `json:"uri"`

	// Match defines the matching strategy used by the source application.
	// Carried through for completeness; the converter does not interpret it.
	Match *int `json:"match"`
}

// CardData holds the payment card sub-record of an exported item.
type CardData struct {
	// CardholderName is the name printed on the card.
	CardholderName *string `json:"cardholderName"`

	// Brand identifies the card network (e.g. Visa, MasterCard).
	Brand *string `json:"brand"`

	// Number is the primary account number (PAN) of the card.
	Number *string `json:"number"`

	// ExpMonth is the card expiration month.
	ExpMonth *string `json:"expMonth"`

	// ExpYear is the card expiration year.
	ExpYear *string `json:"expYear"`

	// Code is the card security code (CVV/CVC).
	Code *string `json:"code"`
}

// FieldType defines the declared type of a custom field in the export.
type FieldType int

// FieldTypeHidden marks a custom field whose value is masked in the source
// application UI.
const FieldTypeHidden FieldType = 1

// Field is a single user-defined custom field of an exported item.
type Field struct {
	// Name is the field label, nil when the user left it empty.
	Name *string `json:"name"`

	// Value is the field content, nil when unset.
	Value *string `json:"value"`

	// Type is the declared field type.
	Type FieldType `json:"type"`
}

// Attachment describes one binary attachment of an exported item.
// The content itself is fetched separately via `bw get attachment`.
type Attachment struct {
	// ID is the attachment identifier used to fetch the content.
	ID string `json:"id"`

	// FileName is the original name of the attached file.
	FileName string `json:"fileName"`
}
