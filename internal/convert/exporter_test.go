// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/models"
)

func newTestExporter(primary, totpStore *fakeStore, vault *fakeVault) *Exporter {
	if vault == nil {
		vault = &fakeVault{}
	}

	e := &Exporter{
		store:      primary,
		vault:      vault,
		classifier: NewClassifier(false),
		logger:     logger.Nop(),
	}
	if totpStore != nil {
		e.totpStore = totpStore
	}

	return e
}

func rootIndex(st *fakeStore) FolderIndex {
	return FolderIndex{"": st.root}
}

func loginItem(name string) *models.Item {
	return &models.Item{
		ID:      "item-1",
		RawName: name,
		Type:    models.Login,
		Login: &models.LoginData{
			Username: strPtr("alice"),
			Password: strPtr("hunter2"),
			URIs: []models.LoginURI{
				{URI: strPtr("https://example.com")},
				{URI: strPtr("https://alt.example.com")},
			},
		},
	}
}

// ─── Login items ────────────────────────────────────────────────────────────

func TestExporter_Login(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	item := loginItem("GitHub")
	item.RawNotes = strPtr("remember me")
	item.Fields = []models.Field{
		field("recoveryCode", "ABCD", 0),
		field("website", "https://example.com", 0),
	}

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(st)))

	id, draft, ok := st.entryByTitle("GitHub")
	require.True(t, ok)
	assert.Equal(t, "alice", draft.Username)
	assert.Equal(t, "hunter2", draft.Password)
	assert.Equal(t, []string{"login"}, draft.Tags)
	assert.Equal(t, "https://example.com", draft.URL)
	require.NotNil(t, draft.Notes)
	assert.Equal(t, "remember me", *draft.Notes)

	first, ok := st.prop(id, "KP2A_URL")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", first.Value)

	second, ok := st.prop(id, "KP2A_URL_1")
	require.True(t, ok)
	assert.Equal(t, "https://alt.example.com", second.Value)

	sensitive, ok := st.prop(id, "Recovery Code")
	require.True(t, ok)
	assert.True(t, sensitive.Protected)

	regular, ok := st.prop(id, "Website")
	require.True(t, ok)
	assert.False(t, regular.Protected)
}

func TestExporter_DuplicateTitleRetriesWithID(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	first := loginItem("GitHub")
	second := loginItem("GitHub")
	second.ID = "item-2"

	require.NoError(t, e.ExportItem(context.Background(), first, rootIndex(st)))
	require.NoError(t, e.ExportItem(context.Background(), second, rootIndex(st)))

	_, _, ok := st.entryByTitle("GitHub")
	assert.True(t, ok)

	_, _, ok = st.entryByTitle("GitHub - item-2")
	assert.True(t, ok)
}

func TestExporter_FolderNotMaterialized(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	item := loginItem("GitHub")
	item.FolderIDRef = strPtr("unknown-folder")

	err := e.ExportItem(context.Background(), item, rootIndex(st))
	assert.ErrorIs(t, err, ErrFolderNotMaterialized)
}

func TestExporter_Attachments(t *testing.T) {
	st := newFakeStore()
	vault := &fakeVault{attachments: map[string][]byte{
		"item-1/att-1": []byte("secret dump"),
	}}
	e := newTestExporter(st, nil, vault)

	item := loginItem("GitHub")
	item.Attachments = []models.Attachment{{ID: "att-1", FileName: "backup.txt"}}

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(st)))

	id, _, ok := st.entryByTitle("GitHub")
	require.True(t, ok)

	binary, ok := st.attachments[id]["backup.txt"]
	require.True(t, ok)
	assert.Equal(t, []byte("secret dump"), st.binaries[binary])
}

// ─── TOTP ───────────────────────────────────────────────────────────────────

func TestExporter_TOTPSingleStore(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	item := loginItem("GitHub")
	item.Login.TOTP = strPtr("otpauth://totp/GitHub:alice?secret=JBSWY3DP&period=60")

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(st)))

	id, draft, ok := st.entryByTitle("GitHub")
	require.True(t, ok)
	assert.Equal(t, []string{"login"}, draft.Tags)

	seed, ok := st.prop(id, "TOTP Seed")
	require.True(t, ok)
	assert.Equal(t, "JBSWY3DP", seed.Value)
	assert.True(t, seed.Protected)

	settings, ok := st.prop(id, "TOTP Settings")
	require.True(t, ok)
	assert.Equal(t, "60;6", settings.Value)
	assert.True(t, settings.Protected)
}

func TestExporter_TOTPSplitStore(t *testing.T) {
	primary := newFakeStore()
	totpStore := newFakeStore()
	e := newTestExporter(primary, totpStore, nil)

	item := loginItem("GitHub")
	item.RawNotes = strPtr("recovery words")
	item.Login.TOTP = strPtr("otpauth://totp/GitHub:alice?secret=JBSWY3DP")
	item.Fields = []models.Field{
		field("recoveryCode", "ABCD", 0),
		field("website", "https://example.com", 0),
	}

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(primary)))

	// Primary entry: tagged, stripped of notes, TOTP and sensitive fields.
	id, draft, ok := primary.entryByTitle("GitHub")
	require.True(t, ok)
	assert.Equal(t, []string{"login", "totp"}, draft.Tags)
	assert.Nil(t, draft.Notes)

	_, ok = primary.prop(id, "TOTP Seed")
	assert.False(t, ok)
	_, ok = primary.prop(id, "Recovery Code")
	assert.False(t, ok)
	_, ok = primary.prop(id, "Website")
	assert.True(t, ok)

	// Companion entry carries everything the primary was stripped of.
	cid, cdraft, ok := totpStore.entryByTitle("GitHub")
	require.True(t, ok)
	assert.Equal(t, totpStore.root, totpStore.entryGroups[cid])
	assert.Equal(t, "alice", cdraft.Username)
	assert.Empty(t, cdraft.Password)
	require.NotNil(t, cdraft.Notes)
	assert.Equal(t, "recovery words", *cdraft.Notes)
	assert.Equal(t, "https://example.com", cdraft.URL)

	seed, ok := totpStore.prop(cid, "TOTP Seed")
	require.True(t, ok)
	assert.Equal(t, "JBSWY3DP", seed.Value)

	settings, ok := totpStore.prop(cid, "TOTP Settings")
	require.True(t, ok)
	assert.Equal(t, "30;6", settings.Value)

	url, ok := totpStore.prop(cid, "KP2A_URL")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", url.Value)

	sensitive, ok := totpStore.prop(cid, "Recovery Code")
	require.True(t, ok)
	assert.True(t, sensitive.Protected)
}

func TestExporter_TOTPSplitStore_CompanionTitleCollision(t *testing.T) {
	primary := newFakeStore()
	totpStore := newFakeStore()
	e := newTestExporter(primary, totpStore, nil)

	workGroup, err := primary.AddGroup(context.Background(), primary.root, "Work")
	require.NoError(t, err)
	index := FolderIndex{"": primary.root, "id-work": workGroup}

	first := loginItem("GitHub")
	first.Login.TOTP = strPtr("otpauth://totp/GitHub:alice?secret=JBSWY3DP")

	// Same name in a different primary group: no primary collision, but the
	// companions share the TOTP store's root.
	second := loginItem("GitHub")
	second.ID = "item-2"
	second.FolderIDRef = strPtr("id-work")
	second.RawNotes = strPtr("recovery words")
	second.Login.TOTP = strPtr("otpauth://totp/GitHub:bob?secret=NBSWY3DP")

	require.NoError(t, e.ExportItem(context.Background(), first, index))
	require.NoError(t, e.ExportItem(context.Background(), second, index))

	id, _, ok := primary.entryByTitle("GitHub")
	require.True(t, ok)
	assert.Equal(t, primary.root, primary.entryGroups[id])

	_, _, ok = totpStore.entryByTitle("GitHub")
	require.True(t, ok)

	// The second companion got the id-suffixed title and kept its material.
	cid, cdraft, ok := totpStore.entryByTitle("GitHub - item-2")
	require.True(t, ok)
	require.NotNil(t, cdraft.Notes)
	assert.Equal(t, "recovery words", *cdraft.Notes)

	seed, ok := totpStore.prop(cid, "TOTP Seed")
	require.True(t, ok)
	assert.Equal(t, "NBSWY3DP", seed.Value)
}

func TestExporter_TOTPSplitStore_NonTOTPLoginStaysWhole(t *testing.T) {
	primary := newFakeStore()
	totpStore := newFakeStore()
	e := newTestExporter(primary, totpStore, nil)

	item := loginItem("GitHub")
	item.RawNotes = strPtr("remember me")
	item.Fields = []models.Field{field("recoveryCode", "ABCD", 0)}

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(primary)))

	id, draft, ok := primary.entryByTitle("GitHub")
	require.True(t, ok)
	require.NotNil(t, draft.Notes)
	assert.Equal(t, []string{"login"}, draft.Tags)

	_, ok = primary.prop(id, "Recovery Code")
	assert.True(t, ok)

	assert.Empty(t, totpStore.entries)
}

// ─── Cards ──────────────────────────────────────────────────────────────────

func cardItem(name string) *models.Item {
	return &models.Item{
		ID:      "card-1",
		RawName: name,
		Type:    models.Card,
		Card: &models.CardData{
			CardholderName: strPtr("Ada Lovelace"),
			Brand:          strPtr("Visa"),
			Number:         strPtr("4111111111111111"),
			ExpMonth:       strPtr("3"),
			ExpYear:        strPtr("2024"),
			Code:           strPtr("123"),
		},
	}
}

func TestExporter_Card(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	require.NoError(t, e.ExportItem(context.Background(), cardItem("Main Visa"), rootIndex(st)))

	id, draft, ok := st.entryByTitle("Main Visa")
	require.True(t, ok)
	assert.Equal(t, "4111111111111111", draft.Username)
	assert.Equal(t, "123", draft.Password)
	assert.Equal(t, []string{"card", "visa"}, draft.Tags)
	assert.Equal(t, "03/2024", draft.URL)
	require.NotNil(t, draft.ExpiryTime)
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC), *draft.ExpiryTime)

	holder, ok := st.prop(id, "Card Holder")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", holder.Value)
	assert.False(t, holder.Protected)

	_, ok = st.prop(id, "KP2A_URL")
	assert.False(t, ok)
}

func TestExporter_CardBadExpiryStillExported(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	item := cardItem("Main Visa")
	item.Card.ExpMonth = strPtr("13")

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(st)))

	_, draft, ok := st.entryByTitle("Main Visa")
	require.True(t, ok)
	assert.Nil(t, draft.ExpiryTime)
	assert.Empty(t, draft.URL)
}

// ─── Identities ─────────────────────────────────────────────────────────────

func TestExporter_Identity(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	item := &models.Item{
		ID:      "identity-1",
		RawName: "Me",
		Type:    models.Identity,
		Identity: map[string]*string{
			"firstName": strPtr("Ada"),
			"username":  strPtr("ada"),
		},
	}

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(st)))

	id, draft, ok := st.entryByTitle("Me")
	require.True(t, ok)
	assert.Equal(t, "ada", draft.Username)
	assert.Equal(t, []string{"identity"}, draft.Tags)

	firstName, ok := st.prop(id, "First Name")
	require.True(t, ok)
	assert.Equal(t, "Ada", firstName.Value)
	assert.False(t, firstName.Protected)
}

// ─── Notes with quoted names ────────────────────────────────────────────────

func TestExporter_StripsQuotesFromTitle(t *testing.T) {
	st := newFakeStore()
	e := newTestExporter(st, nil, nil)

	item := &models.Item{
		ID:      "note-1",
		RawName: `My "secret" note`,
		Type:    models.SecureNote,
		RawNotes: strPtr("body"),
	}

	require.NoError(t, e.ExportItem(context.Background(), item, rootIndex(st)))

	_, draft, ok := st.entryByTitle("My secret note")
	require.True(t, ok)
	assert.Equal(t, []string{"note"}, draft.Tags)
	require.NotNil(t, draft.Notes)
	assert.Equal(t, "body", *draft.Notes)
}
