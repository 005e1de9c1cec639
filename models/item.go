// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"regexp"
	"sort"
	"strings"
)

// ItemType defines the kind of an exported Bitwarden item.
// The numeric values match the `type` field of the `bw list items` JSON output.
type ItemType int

const (
	// Login represents authentication credentials: username, password,
	// URIs, and an optional TOTP seed.
	Login ItemType = 1

	// SecureNote represents free-form secret text.
	SecureNote ItemType = 2

	// Card represents payment card information.
	Card ItemType = 3

	// Identity represents personal identity data (name, address, documents).
	Identity ItemType = 4
)

// Tag returns the default destination tag for the item type.
func (t ItemType) Tag() string {
	switch t {
	case Card:
		return "card"
	case Identity:
		return "identity"
	case SecureNote:
		return "note"
	default:
		return "login"
	}
}

// Item is an immutable view over a single record of the `bw list items`
// JSON output. Kind-specific sub-records are nil when absent, so all
// accessors are nil-safe and return empty strings for missing values.
type Item struct {
	// ID is the unique Bitwarden identifier of the item.
	ID string `json:"id"`

	// RawName is the display name exactly as exported. Use Name for the
	// cleaned variant.
	RawName string `json:"name"`

	// FolderIDRef is the identifier of the owning folder, nil for the root.
	FolderIDRef *string `json:"folderId"`

	// Type defines the kind of the item.
	Type ItemType `json:"type"`

	// RawNotes contains optional free-form notes, nil when unset.
	RawNotes *string `json:"notes"`

	// Login holds login credentials, present only for login items.
	Login *LoginData `json:"login,omitempty"`

	// Card holds payment card data, present only for card items.
	Card *CardData `json:"card,omitempty"`

	// Identity holds identity sub-record keys. Decoded as a generic map
	// because the export schema grows keys over time and every key except
	// username is forwarded to the destination as-is.
	Identity map[string]*string `json:"identity,omitempty"`

	// Fields contains user-defined custom fields.
	Fields []Field `json:"fields,omitempty"`

	// Attachments lists binary attachments stored with the item.
	Attachments []Attachment `json:"attachments,omitempty"`
}

var quoteRunPattern = regexp.MustCompile(`(\\"|")`)

// Name returns the item display name with literal and escaped double quotes
// removed. Quotes break downstream title handling in some KeePass clients.
func (i *Item) Name() string {
	return quoteRunPattern.ReplaceAllString(i.RawName, "")
}

// FolderID returns the owning folder identifier, or an empty string when the
// item lives in the root.
func (i *Item) FolderID() string {
	if i.FolderIDRef == nil {
		return ""
	}
	return *i.FolderIDRef
}

// Username returns the login username, falling back to the identity
// sub-record username when the login one is absent.
func (i *Item) Username() string {
	if i.Login != nil && i.Login.Username != nil && *i.Login.Username != "" {
		return *i.Login.Username
	}
	if v, ok := i.Identity["username"]; ok && v != nil && *v != "" {
		return *v
	}
	return ""
}

// Password returns the login password or an empty string.
func (i *Item) Password() string {
	if i.Login == nil || i.Login.Password == nil {
		return ""
	}
	return *i.Login.Password
}

// Notes returns the raw notes pointer; nil means no notes were exported.
func (i *Item) Notes() *string {
	return i.RawNotes
}

// TOTP returns the raw TOTP value of the login sub-record. The value is
// either an otpauth:// URI or a bare seed; an empty string means no TOTP.
func (i *Item) TOTP() string {
	if i.Login == nil || i.Login.TOTP == nil {
		return ""
	}
	return *i.Login.TOTP
}

// URIs returns the login URIs in export order with nil values coerced to
// empty strings. The slice is empty for non-login items.
func (i *Item) URIs() []string {
	if i.Login == nil {
		return nil
	}

	uris := make([]string, 0, len(i.Login.URIs))
	for _, u := range i.Login.URIs {
		if u.URI == nil {
			uris = append(uris, "")
			continue
		}
		uris = append(uris, *u.URI)
	}

	return uris
}

// CardHolder returns the trimmed cardholder name.
func (i *Item) CardHolder() string {
	if i.Card == nil || i.Card.CardholderName == nil {
		return ""
	}
	return strings.TrimSpace(*i.Card.CardholderName)
}

// CardBrand returns the card network name lower-cased (e.g. "visa").
func (i *Item) CardBrand() string {
	if i.Card == nil || i.Card.Brand == nil {
		return ""
	}
	return strings.ToLower(*i.Card.Brand)
}

// CardNumber returns the trimmed primary account number.
func (i *Item) CardNumber() string {
	if i.Card == nil || i.Card.Number == nil {
		return ""
	}
	return strings.TrimSpace(*i.Card.Number)
}

// CardCode returns the trimmed card security code (CVV/CVC).
func (i *Item) CardCode() string {
	if i.Card == nil || i.Card.Code == nil {
		return ""
	}
	return strings.TrimSpace(*i.Card.Code)
}

// CardExpiry returns the expiry formatted as MM/YYYY with the month
// zero-padded to two digits. Returns an empty string unless both the month
// and the year are present.
func (i *Item) CardExpiry() string {
	if i.Card == nil || i.Card.ExpMonth == nil || i.Card.ExpYear == nil {
		return ""
	}

	month := strings.TrimSpace(*i.Card.ExpMonth)
	year := strings.TrimSpace(*i.Card.ExpYear)
	if month == "" || year == "" {
		return ""
	}

	if len(month) < 2 {
		month = "0" + month
	}

	return month + "/" + year
}

// IdentityKeys returns the identity sub-record keys except "username" in
// ascending order. Sorting keeps attribute export order deterministic across
// runs; JSON object order is not preserved by map decoding.
func (i *Item) IdentityKeys() []string {
	keys := make([]string, 0, len(i.Identity))
	for k := range i.Identity {
		if k == "username" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// IdentityValue returns the identity value for key with nil coerced to an
// empty string.
func (i *Item) IdentityValue(key string) string {
	v, ok := i.Identity[key]
	if !ok || v == nil {
		return ""
	}
	return *v
}
