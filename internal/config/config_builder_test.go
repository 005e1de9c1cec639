package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation (no session token anywhere).
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrMissingSession)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs taking priority for
// fields set in both.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Bitwarden: Bitwarden{Session: "env-session", Path: "sh"},
		},
		&StructuredConfig{
			Bitwarden: Bitwarden{Session: "flag-session"},
			Database:  Database{Path: "/vault/passwords.db", Password: "pw"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-session", cfg.Bitwarden.Session)
	assert.Equal(t, "/vault/passwords.db", cfg.Database.Path)
	assert.Equal(t, "pw", cfg.Database.Password)
}

// TestBuild_AppliesDefaults verifies that the bw path falls back to the
// PATH-resolved default when no source sets it.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Bitwarden: Bitwarden{Session: "session"},
		Database:  Database{Path: "/vault/passwords.db", Password: "pw"},
	})

	cfg, err := b.build()
	// The default "bw" binary may or may not exist on the test machine;
	// either way the default must have been applied before validation.
	if err != nil {
		assert.ErrorIs(t, err, ErrBitwardenCLINotFound)
		return
	}
	assert.Equal(t, DefaultBitwardenPath, cfg.Bitwarden.Path)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathConfigured verifies that withJSON is a no-op when no
// earlier source specified a JSON file path.
func TestWithJSON_NoPathConfigured(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsConfiguredFile verifies that the JSON file referenced by
// an earlier source is parsed and appended.
func TestWithJSON_LoadsConfiguredFile(t *testing.T) {
	path := writeJSONConfig(t, `{"database": {"path": "/vault/from-json.db"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/vault/from-json.db", b.configs[1].Database.Path)
}

// TestWithJSON_BadFileSetsError verifies that an unreadable JSON file is
// recorded as a builder error.
func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()

	assert.Error(t, b.err)
}
