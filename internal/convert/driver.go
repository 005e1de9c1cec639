// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bitwarden2keepass/internal/bitwarden"
	"github.com/MKhiriev/bitwarden2keepass/internal/config"
	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/internal/store"
)

// StoreProvider opens or creates destination databases. It exists so the
// conversion flow can be tested without touching the filesystem.
//
//go:generate mockgen -source=driver.go -destination=../mock/convert_mock.go -package=mock
type StoreProvider interface {
	Open(ctx context.Context, cfg config.Database) (store.Store, error)
	Create(ctx context.Context, cfg config.Database) (store.Store, error)
}

// sqliteProvider is the production [StoreProvider] backed by the SQLite
// store engine.
type sqliteProvider struct {
	logger *logger.Logger
}

// NewSQLiteProvider returns the [StoreProvider] used outside of tests.
func NewSQLiteProvider(log *logger.Logger) StoreProvider {
	return &sqliteProvider{logger: log}
}

func (p *sqliteProvider) Open(ctx context.Context, cfg config.Database) (store.Store, error) {
	return store.Open(ctx, cfg, p.logger)
}

func (p *sqliteProvider) Create(ctx context.Context, cfg config.Database) (store.Store, error) {
	return store.Create(ctx, cfg, p.logger)
}

// Converter wires the vault client, the destination stores and the
// per-item exporter into the end-to-end conversion flow.
type Converter struct {
	vault    bitwarden.Client
	provider StoreProvider
	configs  *config.StructuredConfig

	logger *logger.Logger
}

// NewConverter constructs a [Converter] from its collaborators.
func NewConverter(vault bitwarden.Client, provider StoreProvider, configs *config.StructuredConfig, log *logger.Logger) *Converter {
	return &Converter{
		vault:    vault,
		provider: provider,
		configs:  configs,
		logger:   log,
	}
}

// Run performs the whole conversion: open the destination store(s), mirror
// the folder tree as groups, export every item, then persist. Per-item
// failures are logged and skipped; everything else is fatal.
func (c *Converter) Run(ctx context.Context) error {
	primary, err := c.openOrCreate(ctx, c.configs.Database)
	if err != nil {
		return err
	}
	defer primary.Close()

	var totpStore store.Store
	if c.configs.Separated() {
		totpStore, err = c.openOrCreate(ctx, c.configs.TOTPDatabase)
		if err != nil {
			return err
		}
		defer totpStore.Close()
	}

	folders, err := c.vault.ListFolders(ctx)
	if err != nil {
		return fmt.Errorf("listing folders: %w", err)
	}

	tree := BuildFolderTree(folders)

	index, err := MaterializeGroups(ctx, primary, tree, c.logger)
	if err != nil {
		return err
	}

	c.logger.Info().Int("count", len(folders)).Msg("Folders done")

	items, err := c.vault.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}

	c.logger.Info().Int("count", len(items)).Msg("Starting to process items")

	classifier := NewClassifier(c.configs.Converter.SensitiveOnProtected)
	exporter := NewExporter(primary, totpStore, c.vault, classifier, c.logger)

	for i := range items {
		item := &items[i]
		if err = exporter.ExportItem(ctx, item, index); err != nil {
			c.logger.Warn().
				Str("item", item.Name()).
				Err(err).
				Msg("Skipping item because of this error")
		}
	}

	c.logger.Info().Msg("Saving changes to KeePass db")

	if err = primary.Save(ctx); err != nil {
		return fmt.Errorf("saving primary database: %w", err)
	}

	if totpStore != nil {
		if err = totpStore.Save(ctx); err != nil {
			return fmt.Errorf("saving totp database: %w", err)
		}
	}

	c.logger.Info().Msg("Export completed")

	return nil
}

// openOrCreate opens an existing database, creating it first when it does
// not exist yet. A credential mismatch on an existing database is fatal.
func (c *Converter) openOrCreate(ctx context.Context, cfg config.Database) (store.Store, error) {
	st, err := c.provider.Open(ctx, cfg)
	if err == nil {
		return st, nil
	}

	switch {
	case errors.Is(err, store.ErrStoreNotFound):
		c.logger.Info().Str("path", cfg.Path).Msg("KeePass db does not exist, creating a new one")

		return c.provider.Create(ctx, cfg)
	case errors.Is(err, store.ErrBadCredentials):
		return nil, fmt.Errorf("wrong password for KeePass db %q: %w", cfg.Path, err)
	default:
		return nil, err
	}
}
