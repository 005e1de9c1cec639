// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bitwarden

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/bitwarden2keepass/internal/config"
	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/models"
)

// cliClient implements [Client] by invoking the bw executable.
type cliClient struct {
	path    string
	session string
	runner  CommandRunner

	logger *logger.Logger
}

// NewCLIClient constructs a [Client] over the configured bw executable and
// session token. Pass a custom runner for testing, or [NewExecRunner] for
// production use.
func NewCLIClient(cfg config.Bitwarden, runner CommandRunner, log *logger.Logger) Client {
	return &cliClient{
		path:    cfg.Path,
		session: cfg.Session,
		runner:  runner,
		logger:  log,
	}
}

func (c *cliClient) ListFolders(ctx context.Context) ([]models.Folder, error) {
	output, err := c.runner.Run(ctx, c.path, "list", "folders", "--session", c.session)
	if err != nil {
		c.logger.Err(err).Str("func", "cliClient.ListFolders").Msg("bw list folders failed")
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	var folders []models.Folder
	if err = json.Unmarshal(output, &folders); err != nil {
		return nil, fmt.Errorf("%w: folders: %w", ErrInvalidJSON, err)
	}

	return folders, nil
}

func (c *cliClient) ListItems(ctx context.Context) ([]models.Item, error) {
	output, err := c.runner.Run(ctx, c.path, "list", "items", "--session", c.session)
	if err != nil {
		c.logger.Err(err).Str("func", "cliClient.ListItems").Msg("bw list items failed")
		return nil, fmt.Errorf("listing items: %w", err)
	}

	var items []models.Item
	if err = json.Unmarshal(output, &items); err != nil {
		return nil, fmt.Errorf("%w: items: %w", ErrInvalidJSON, err)
	}

	return items, nil
}

func (c *cliClient) GetAttachment(ctx context.Context, attachmentID, itemID string) ([]byte, error) {
	output, err := c.runner.Run(ctx, c.path,
		"get", "attachment", attachmentID,
		"--raw",
		"--itemid", itemID,
		"--session", c.session,
	)
	if err != nil {
		c.logger.Err(err).
			Str("func", "cliClient.GetAttachment").
			Str("attachment_id", attachmentID).
			Str("item_id", itemID).
			Msg("bw get attachment failed")
		return nil, fmt.Errorf("fetching attachment %s: %w", attachmentID, err)
	}

	return output, nil
}
