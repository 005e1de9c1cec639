// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package convert implements the conversion core: key normalization, field
// classification, folder tree reconstruction, and the per-item export state
// machine that turns Bitwarden records into destination store entries.
package convert

import (
	"regexp"
	"strings"
	"unicode"
)

// reservedKeys are built-in field names of the destination schema. A
// normalized key that lands on one of them would clobber the built-in
// field, so it is suffixed with a single space.
var reservedKeys = map[string]struct{}{
	"Title":    {},
	"UserName": {},
	"Password": {},
	"URL":      {},
	"Tags":     {},
	"IconID":   {},
	"Times":    {},
	"History":  {},
	"Notes":    {},
	"otp":      {},
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// NormalizeKey turns an arbitrary source field name into a display-safe key:
// camel-case boundaries become spaces ("recoveryCode" -> "recovery Code"),
// hyphens and underscores become spaces, tokens are title-cased and rejoined
// with single spaces. Keys colliding with a reserved destination field name
// get one trailing space appended.
//
// The function is pure and stable; duplicate-field detection downstream
// relies on identical inputs producing identical keys.
func NormalizeKey(raw string) string {
	spaced := camelBoundary.ReplaceAllString(raw, "$1 $2")
	spaced = separatorReplacer.Replace(spaced)
	spaced = strings.ToLower(strings.TrimSpace(spaced))

	words := strings.Fields(spaced)
	for i, word := range words {
		words[i] = titleCase(word)
	}

	key := strings.Join(words, " ")
	if _, reserved := reservedKeys[key]; reserved {
		key += " "
	}

	return key
}

// titleCase upper-cases every letter that starts an alphabetic run, so
// "2fa" becomes "2Fa" and "code" becomes "Code".
func titleCase(word string) string {
	runes := []rune(word)
	previousIsLetter := false

	for i, r := range runes {
		if unicode.IsLetter(r) && !previousIsLetter {
			runes[i] = unicode.ToUpper(r)
		}
		previousIsLetter = unicode.IsLetter(r)
	}

	return string(runes)
}
