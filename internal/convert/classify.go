// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/bitwarden2keepass/models"
)

// Default TOTP parameters applied when the otpauth URI does not carry them.
const (
	defaultTOTPPeriod = "30"
	defaultTOTPDigits = "6"
)

// sensitiveKeyPattern matches normalized field names whose values must be
// stored masked in the destination.
var sensitiveKeyPattern = regexp.MustCompile(`(?i)(phrase|code|2fa|totp|recovery|secret|security|passw)`)

// skipValues encode "not set" / "verified" placeholders that carry no
// export value and are dropped entirely.
var skipValues = map[string]struct{}{
	"":  {},
	" ": {},
	"✓": {},
}

// Classifier splits an item's custom fields into sensitive and regular
// buckets and extracts kind-specific attributes.
type Classifier struct {
	// SensitiveOnProtected additionally treats fields the source flagged as
	// hidden as sensitive. Disabled by default; the upstream rule exists
	// but is switched off, so the behavior stays configurable.
	SensitiveOnProtected bool
}

// NewClassifier constructs a [Classifier] from the converter configuration
// switches.
func NewClassifier(sensitiveOnProtected bool) *Classifier {
	return &Classifier{SensitiveOnProtected: sensitiveOnProtected}
}

// Fields classifies the item's custom fields. Sensitive attributes are
// always marked protected; regular attributes keep the source's hidden
// flag. Fields whose trimmed value is a placeholder are dropped from both
// buckets.
func (c *Classifier) Fields(item *models.Item) (sensitive, regular []models.Attribute) {
	for _, field := range item.Fields {
		name := ""
		if field.Name != nil {
			name = NormalizeKey(*field.Name)
		}

		value := ""
		if field.Value != nil {
			value = strings.TrimSpace(*field.Value)
		}

		if _, skip := skipValues[value]; skip {
			continue
		}

		hidden := field.Type == models.FieldTypeHidden

		if c.isSensitive(name, hidden) {
			sensitive = append(sensitive, models.Attribute{Name: name, Value: value, Protected: true})
			continue
		}

		regular = append(regular, models.Attribute{Name: name, Value: value, Protected: hidden})
	}

	return sensitive, regular
}

func (c *Classifier) isSensitive(name string, hidden bool) bool {
	if sensitiveKeyPattern.MatchString(name) {
		return true
	}

	return c.SensitiveOnProtected && hidden
}

// TOTP extracts the TOTP seed and settings of a login item.
//
// The raw value is parsed as an otpauth URI; `period` defaults to 30 and
// `digits` to 6. When no `secret` query parameter is present the raw value
// itself is the seed (some exports store the bare seed instead of a URI).
// Returns ok=false when the item has no login sub-record or no TOTP value.
func (c *Classifier) TOTP(item *models.Item) (secret, settings string, ok bool) {
	raw := item.TOTP()
	if raw == "" {
		return "", "", false
	}

	period := defaultTOTPPeriod
	digits := defaultTOTPDigits
	secret = raw

	if parsed, err := url.Parse(raw); err == nil {
		query := parsed.Query()
		if v := query.Get("period"); v != "" {
			period = v
		}
		if v := query.Get("digits"); v != "" {
			digits = v
		}
		if v := query.Get("secret"); v != "" {
			secret = v
		}
	}

	return secret, period + ";" + digits, true
}

// IdentityAttributes exports every identity sub-record key except username
// as a public attribute with a normalized name. Missing values become empty
// strings, never null.
func (c *Classifier) IdentityAttributes(item *models.Item) []models.Attribute {
	keys := item.IdentityKeys()

	attrs := make([]models.Attribute, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, models.Attribute{
			Name:      NormalizeKey(key),
			Value:     item.IdentityValue(key),
			Protected: false,
		})
	}

	return attrs
}

// CardExpiryTime converts an "MM/YYYY" card expiry into the last instant of
// that month (23:59:59 UTC). Cards conventionally stay valid through the end
// of the stated month.
func CardExpiryTime(expiry string) (time.Time, error) {
	parts := strings.SplitN(expiry, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("unparseable card expiry %q", expiry)
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("unparseable card expiry month %q", expiry)
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || year < 1 {
		return time.Time{}, fmt.Errorf("unparseable card expiry year %q", expiry)
	}

	firstOfNextMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)

	return firstOfNextMonth.Add(-time.Second), nil
}
