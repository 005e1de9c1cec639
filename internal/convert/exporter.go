// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bitwarden2keepass/internal/bitwarden"
	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/internal/store"
	"github.com/MKhiriev/bitwarden2keepass/models"
)

// totpTag marks primary entries whose TOTP material lives in the separate
// TOTP store.
const totpTag = "totp"

// Exporter drives the per-item conversion: title resolution, entry
// creation (with one bounded retry on a title collision), the optional
// TOTP companion entry, and field/URI/attachment enrichment.
type Exporter struct {
	store      store.Store
	totpStore  store.Store // nil when the split-database policy is off
	vault      bitwarden.Client
	classifier *Classifier

	logger *logger.Logger
}

// NewExporter constructs an [Exporter]. Pass a nil totpStore to keep TOTP
// material in the primary store.
func NewExporter(primary, totpStore store.Store, vault bitwarden.Client, classifier *Classifier, log *logger.Logger) *Exporter {
	return &Exporter{
		store:      primary,
		totpStore:  totpStore,
		vault:      vault,
		classifier: classifier,
		logger:     log,
	}
}

// ErrFolderNotMaterialized is returned when an item references a folder
// identifier that has no destination group, indicating an inconsistent
// source export.
var ErrFolderNotMaterialized = errors.New("item folder has no destination group")

// ExportItem converts one source item into destination entries. Any error
// it returns abandons only this item; the caller logs it and moves on.
func (e *Exporter) ExportItem(ctx context.Context, item *models.Item, index FolderIndex) error {
	group, ok := index[item.FolderID()]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFolderNotMaterialized, item.FolderID())
	}

	separated := e.totpStore != nil
	isLogin := item.Type == models.Login
	isCard := item.Type == models.Card
	isIdentity := item.Type == models.Identity

	totpSecret, totpSettings, totpEnabled := e.classifier.TOTP(item)
	sensitive, regular := e.classifier.Fields(item)
	uris := item.URIs()
	notes := item.Notes()

	// Sensitive fields travel with the TOTP companion only when the split
	// policy applies to this item; otherwise everything merges onto the
	// one entry that exists.
	attrs := regular
	if !separated || !isLogin {
		attrs = append(append([]models.Attribute{}, sensitive...), regular...)
	}

	tags := []string{item.Type.Tag()}
	entryURL := ""
	var expiryTime *time.Time

	if isCard {
		if brand := item.CardBrand(); brand != "" {
			tags = append(tags, brand)
		}

		if expiry := item.CardExpiry(); expiry != "" {
			parsed, err := CardExpiryTime(expiry)
			if err != nil {
				e.logger.Warn().Str("item", item.Name()).Msg("skipping card expiry time")
			} else {
				expiryTime = &parsed
				entryURL = expiry
			}
		}
	} else if len(uris) > 0 && !isIdentity {
		entryURL = uris[0]
	}

	username := item.Username()
	password := item.Password()
	if isCard {
		username = item.CardNumber()
		password = item.CardCode()
	}

	primaryNotes := notes
	if separated && totpEnabled {
		// Recovery material embedded in notes must not be duplicated
		// across stores; the companion entry carries it.
		primaryNotes = nil
		tags = append(tags, totpTag)
	}

	entry, title, err := e.createPrimaryEntry(ctx, item, group, models.EntryDraft{
		Title:      item.Name(),
		Username:   username,
		Password:   password,
		Notes:      primaryNotes,
		Tags:       tags,
		ExpiryTime: expiryTime,
		URL:        entryURL,
	})
	if err != nil {
		return err
	}

	if separated && totpEnabled {
		if err = e.exportTOTPCompanion(ctx, item, title, username, notes, entryURL, totpSecret, totpSettings, uris, sensitive); err != nil {
			return err
		}
	}

	switch {
	case isIdentity:
		attrs = append(attrs, e.classifier.IdentityAttributes(item)...)
	case isCard:
		if holder := item.CardHolder(); holder != "" {
			attrs = append(attrs, models.Attribute{Name: "Card Holder", Value: holder, Protected: false})
		}
	default:
		if err = e.setURIs(ctx, e.store, entry, uris); err != nil {
			return err
		}

		if err = e.attach(ctx, entry, item); err != nil {
			return err
		}
	}

	if totpEnabled && !separated {
		if err = e.setTOTP(ctx, e.store, entry, totpSecret, totpSettings); err != nil {
			return err
		}
	}

	return e.setAttributes(ctx, e.store, entry, attrs)
}

// createPrimaryEntry creates the item's entry in group. A title collision
// is retried exactly once with the title disambiguated by the item
// identifier; identifiers are unique, so a second collision cannot occur.
func (e *Exporter) createPrimaryEntry(ctx context.Context, item *models.Item, group models.GroupID, draft models.EntryDraft) (models.EntryID, string, error) {
	entry, err := e.store.AddEntry(ctx, group, draft)
	if err == nil {
		return entry, draft.Title, nil
	}

	if !errors.Is(err, store.ErrDuplicateTitle) {
		return 0, "", err
	}

	e.logger.Debug().
		Str("item", item.Name()).
		Msg("duplicate title, retrying with item id suffix")

	draft.Title = fmt.Sprintf("%s - %s", item.Name(), item.ID)

	entry, err = e.store.AddEntry(ctx, group, draft)
	if err != nil {
		return 0, "", err
	}

	return entry, draft.Title, nil
}

// exportTOTPCompanion creates the companion entry in the TOTP store's root
// carrying the TOTP material, all URIs, the item notes, and the sensitive
// fields.
//
// All companions share the single root group, so two same-named items from
// different primary groups collide here even when their primaries do not. A
// collision gets the same single id-suffixed retry as the primary entry.
func (e *Exporter) exportTOTPCompanion(ctx context.Context, item *models.Item, title, username string, notes *string, url, secret, settings string, uris []string, sensitive []models.Attribute) error {
	root, err := e.totpStore.RootGroup(ctx)
	if err != nil {
		return fmt.Errorf("resolving totp store root: %w", err)
	}

	draft := models.EntryDraft{
		Title:    title,
		Username: username,
		Password: "",
		Notes:    notes,
		URL:      url,
	}

	companion, err := e.totpStore.AddEntry(ctx, root, draft)
	if errors.Is(err, store.ErrDuplicateTitle) {
		e.logger.Debug().
			Str("item", item.Name()).
			Msg("duplicate companion title, retrying with item id suffix")

		draft.Title = fmt.Sprintf("%s - %s", item.Name(), item.ID)
		companion, err = e.totpStore.AddEntry(ctx, root, draft)
	}
	if err != nil {
		return fmt.Errorf("creating totp companion entry: %w", err)
	}

	if err = e.setTOTP(ctx, e.totpStore, companion, secret, settings); err != nil {
		return err
	}

	if err = e.setURIs(ctx, e.totpStore, companion, uris); err != nil {
		return err
	}

	return e.setAttributes(ctx, e.totpStore, companion, sensitive)
}

// setURIs writes one indexed attribute per URI. The first URI doubles as
// the entry's canonical URL and is named without an index suffix, matching
// the naming the Keepass2Android client expects.
func (e *Exporter) setURIs(ctx context.Context, st store.Store, entry models.EntryID, uris []string) error {
	for i, uri := range uris {
		name := fmt.Sprintf("KP2A_URL_%d", i)
		if i == 0 {
			name = "KP2A_URL"
		}

		if err := st.SetCustomProperty(ctx, entry, name, uri, false); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) setTOTP(ctx context.Context, st store.Store, entry models.EntryID, secret, settings string) error {
	if err := st.SetCustomProperty(ctx, entry, "TOTP Seed", secret, true); err != nil {
		return err
	}

	return st.SetCustomProperty(ctx, entry, "TOTP Settings", settings, true)
}

func (e *Exporter) setAttributes(ctx context.Context, st store.Store, entry models.EntryID, attrs []models.Attribute) error {
	for _, attr := range attrs {
		if err := st.SetCustomProperty(ctx, entry, attr.Name, attr.Value, attr.Protected); err != nil {
			return err
		}
	}

	return nil
}

// attach fetches every listed attachment through the CLI collaborator and
// stores it on the entry under the original filename.
func (e *Exporter) attach(ctx context.Context, entry models.EntryID, item *models.Item) error {
	for _, attachment := range item.Attachments {
		content, err := e.vault.GetAttachment(ctx, attachment.ID, item.ID)
		if err != nil {
			return err
		}

		binary, err := e.store.AddBinary(ctx, content)
		if err != nil {
			return err
		}

		if err = e.store.AddAttachment(ctx, entry, binary, attachment.FileName); err != nil {
			return err
		}
	}

	return nil
}
