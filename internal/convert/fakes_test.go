// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bitwarden2keepass/internal/store"
	"github.com/MKhiriev/bitwarden2keepass/models"
)

// fakeStore is an in-memory [store.Store] recording every mutation. It
// reproduces the duplicate-title contract of the SQLite engine so the
// retry path is exercised for real.
type fakeStore struct {
	nextGroup  models.GroupID
	nextEntry  models.EntryID
	nextBinary models.BinaryID

	root        models.GroupID
	groupNames  map[models.GroupID]string
	groupParent map[models.GroupID]models.GroupID

	entries     map[models.EntryID]models.EntryDraft
	entryGroups map[models.EntryID]models.GroupID
	props       map[models.EntryID][]models.Attribute

	binaries    map[models.BinaryID][]byte
	attachments map[models.EntryID]map[string]models.BinaryID

	saves  int
	closed bool

	rootErr     error
	addGroupErr error
	addEntryErr error
	setPropErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextGroup:   1,
		root:        1,
		groupNames:  map[models.GroupID]string{1: "Root"},
		groupParent: map[models.GroupID]models.GroupID{},
		entries:     map[models.EntryID]models.EntryDraft{},
		entryGroups: map[models.EntryID]models.GroupID{},
		props:       map[models.EntryID][]models.Attribute{},
		binaries:    map[models.BinaryID][]byte{},
		attachments: map[models.EntryID]map[string]models.BinaryID{},
	}
}

func (f *fakeStore) RootGroup(context.Context) (models.GroupID, error) {
	if f.rootErr != nil {
		return 0, f.rootErr
	}
	return f.root, nil
}

func (f *fakeStore) AddGroup(_ context.Context, parent models.GroupID, name string) (models.GroupID, error) {
	if f.addGroupErr != nil {
		return 0, f.addGroupErr
	}

	f.nextGroup++
	id := f.nextGroup
	f.groupNames[id] = name
	f.groupParent[id] = parent

	return id, nil
}

func (f *fakeStore) AddEntry(_ context.Context, group models.GroupID, draft models.EntryDraft) (models.EntryID, error) {
	if f.addEntryErr != nil {
		return 0, f.addEntryErr
	}

	for id, existing := range f.entries {
		if f.entryGroups[id] == group && existing.Title == draft.Title {
			return 0, fmt.Errorf("%w: %q", store.ErrDuplicateTitle, draft.Title)
		}
	}

	f.nextEntry++
	id := f.nextEntry
	f.entries[id] = draft
	f.entryGroups[id] = group

	return id, nil
}

func (f *fakeStore) SetCustomProperty(_ context.Context, entry models.EntryID, name, value string, protected bool) error {
	if f.setPropErr != nil {
		return f.setPropErr
	}

	attrs := f.props[entry]
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Value = value
			attrs[i].Protected = protected
			return nil
		}
	}

	f.props[entry] = append(attrs, models.Attribute{Name: name, Value: value, Protected: protected})

	return nil
}

func (f *fakeStore) AddBinary(_ context.Context, content []byte) (models.BinaryID, error) {
	f.nextBinary++
	f.binaries[f.nextBinary] = content

	return f.nextBinary, nil
}

func (f *fakeStore) AddAttachment(_ context.Context, entry models.EntryID, binary models.BinaryID, filename string) error {
	if f.attachments[entry] == nil {
		f.attachments[entry] = map[string]models.BinaryID{}
	}
	f.attachments[entry][filename] = binary

	return nil
}

func (f *fakeStore) Save(context.Context) error {
	f.saves++
	return nil
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

// prop returns the recorded attribute of an entry by name.
func (f *fakeStore) prop(entry models.EntryID, name string) (models.Attribute, bool) {
	for _, attr := range f.props[entry] {
		if attr.Name == name {
			return attr, true
		}
	}
	return models.Attribute{}, false
}

// entryByTitle finds the single entry with the given title.
func (f *fakeStore) entryByTitle(title string) (models.EntryID, models.EntryDraft, bool) {
	for id, draft := range f.entries {
		if draft.Title == title {
			return id, draft, true
		}
	}
	return 0, models.EntryDraft{}, false
}

// fakeVault is an in-memory Bitwarden CLI collaborator.
type fakeVault struct {
	folders []models.Folder
	items   []models.Item

	// attachments is keyed by "<itemID>/<attachmentID>".
	attachments map[string][]byte

	foldersErr    error
	itemsErr      error
	attachmentErr error
}

func (v *fakeVault) ListFolders(context.Context) ([]models.Folder, error) {
	if v.foldersErr != nil {
		return nil, v.foldersErr
	}
	return v.folders, nil
}

func (v *fakeVault) ListItems(context.Context) ([]models.Item, error) {
	if v.itemsErr != nil {
		return nil, v.itemsErr
	}
	return v.items, nil
}

func (v *fakeVault) GetAttachment(_ context.Context, attachmentID, itemID string) ([]byte, error) {
	if v.attachmentErr != nil {
		return nil, v.attachmentErr
	}

	content, ok := v.attachments[itemID+"/"+attachmentID]
	if !ok {
		return nil, fmt.Errorf("no attachment %s on %s", attachmentID, itemID)
	}

	return content, nil
}
