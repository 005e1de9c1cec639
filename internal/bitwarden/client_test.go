// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bitwarden

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bitwarden2keepass/internal/config"
	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
)

// ─────────────────────────────────────────────
// Mock: CommandRunner
// ─────────────────────────────────────────────

type mockRunner struct {
	runFn func(ctx context.Context, path string, args ...string) ([]byte, error)
}

func (m *mockRunner) Run(ctx context.Context, path string, args ...string) ([]byte, error) {
	if m.runFn != nil {
		return m.runFn(ctx, path, args...)
	}
	return nil, nil
}

func newTestClient(runner *mockRunner) Client {
	return NewCLIClient(config.Bitwarden{
		Session: "test-session",
		Path:    "/usr/bin/bw",
	}, runner, logger.Nop())
}

// ─────────────────────────────────────────────
// ListFolders
// ─────────────────────────────────────────────

func TestListFolders_Success(t *testing.T) {
	runner := &mockRunner{
		runFn: func(_ context.Context, path string, args ...string) ([]byte, error) {
			assert.Equal(t, "/usr/bin/bw", path)
			assert.Equal(t, []string{"list", "folders", "--session", "test-session"}, args)
			return []byte(`[{"id":null,"name":"No Folder"},{"id":"f1","name":"Work/VPN"}]`), nil
		},
	}

	folders, err := newTestClient(runner).ListFolders(context.Background())

	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Nil(t, folders[0].ID)
	assert.Equal(t, "No Folder", folders[0].Name)
	require.NotNil(t, folders[1].ID)
	assert.Equal(t, "f1", *folders[1].ID)
	assert.Equal(t, "Work/VPN", folders[1].Name)
}

func TestListFolders_CommandFailure(t *testing.T) {
	runner := &mockRunner{
		runFn: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, ErrCommandFailed
		},
	}

	_, err := newTestClient(runner).ListFolders(context.Background())

	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestListFolders_MalformedJSON(t *testing.T) {
	runner := &mockRunner{
		runFn: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte(`You are not logged in.`), nil
		},
	}

	_, err := newTestClient(runner).ListFolders(context.Background())

	assert.ErrorIs(t, err, ErrInvalidJSON)
}

// ─────────────────────────────────────────────
// ListItems
// ─────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	runner := &mockRunner{
		runFn: func(_ context.Context, _ string, args ...string) ([]byte, error) {
			assert.Equal(t, []string{"list", "items", "--session", "test-session"}, args)
			return []byte(`[
				{"id":"i1","name":"GitHub","folderId":"f1","type":1,
				 "login":{"username":"octocat","password":"hunter2","totp":null},
				 "notes":null}
			]`), nil
		},
	}

	items, err := newTestClient(runner).ListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, "GitHub", items[0].Name())
	assert.Equal(t, "f1", items[0].FolderID())
	assert.Equal(t, "octocat", items[0].Username())
	assert.Equal(t, "hunter2", items[0].Password())
	assert.Empty(t, items[0].TOTP())
}

func TestListItems_MalformedJSON(t *testing.T) {
	runner := &mockRunner{
		runFn: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte(`{not json`), nil
		},
	}

	_, err := newTestClient(runner).ListItems(context.Background())

	assert.ErrorIs(t, err, ErrInvalidJSON)
}

// ─────────────────────────────────────────────
// GetAttachment
// ─────────────────────────────────────────────

func TestGetAttachment_Success(t *testing.T) {
	raw := []byte{0x25, 0x50, 0x44, 0x46}
	runner := &mockRunner{
		runFn: func(_ context.Context, _ string, args ...string) ([]byte, error) {
			assert.Equal(t, []string{
				"get", "attachment", "a1",
				"--raw",
				"--itemid", "i1",
				"--session", "test-session",
			}, args)
			return raw, nil
		},
	}

	content, err := newTestClient(runner).GetAttachment(context.Background(), "a1", "i1")

	require.NoError(t, err)
	assert.Equal(t, raw, content)
}

func TestGetAttachment_CommandFailure(t *testing.T) {
	runner := &mockRunner{
		runFn: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, ErrCommandFailed
		},
	}

	_, err := newTestClient(runner).GetAttachment(context.Background(), "a1", "i1")

	assert.ErrorIs(t, err, ErrCommandFailed)
}
