// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package wikistore

import (
	"context"
	"fmt"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type serverRegistry struct {
	store  TiddlerStore
	logger *logger.Logger
}

// NewServerRegistry creates the [ServerRegistry] view over the store.
func NewServerRegistry(store TiddlerStore, log *logger.Logger) ServerRegistry {
	return &serverRegistry{store: store, logger: log}
}

func (r *serverRegistry) ListServers(ctx context.Context) ([]models.ServerRecord, error) {
	titles, err := r.store.TitlesByPrefix(ctx, models.ServerTiddlerPrefix)
	if err != nil {
		return nil, fmt.Errorf("list server titles: %w", err)
	}

	servers := make([]models.ServerRecord, 0, len(titles))
	for _, title := range titles {
		fields, found, err := r.store.Get(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("read server tiddler %q: %w", title, err)
		}
		if !found {
			continue
		}
		rec, err := models.ServerRecordFromFields(fields)
		if err != nil {
			r.logger.Warn().Err(err).Str("title", title).Msg("skipping malformed server tiddler")
			continue
		}
		servers = append(servers, rec)
	}

	return servers, nil
}

func (r *serverRegistry) SaveServer(ctx context.Context, rec models.ServerRecord) error {
	if err := r.store.Upsert(ctx, rec.Fields()); err != nil {
		return fmt.Errorf("save server %q: %w", rec.Title, err)
	}
	return nil
}

func (r *serverRegistry) ActiveServerTitle(ctx context.Context) (string, error) {
	text, _, err := r.store.GetText(ctx, models.ActiveServerStateTiddlerTitle)
	if err != nil {
		return "", fmt.Errorf("read active server pointer: %w", err)
	}
	return text, nil
}

// SetActiveServer writes the pointer tiddler (text = target title, with a
// denormalized lastSync for fast reads) and mirrors lastSync onto the
// server's own tiddler.
func (r *serverRegistry) SetActiveServer(ctx context.Context, title string, lastSync models.LastSync) error {
	pointer := models.TiddlerFields{
		models.FieldTitle: models.ActiveServerStateTiddlerTitle,
		models.FieldText:  title,
	}
	if at, ok := lastSync.Value(); ok {
		pointer[models.FieldLastSync] = at
	}
	if err := r.store.Upsert(ctx, pointer); err != nil {
		return fmt.Errorf("write active server pointer: %w", err)
	}

	fields, found, err := r.store.Get(ctx, title)
	if err != nil {
		return fmt.Errorf("read server tiddler %q: %w", title, err)
	}
	if !found {
		return nil
	}
	if at, ok := lastSync.Value(); ok {
		fields[models.FieldLastSync] = at
		if err = r.store.Upsert(ctx, fields); err != nil {
			return fmt.Errorf("update server lastSync %q: %w", title, err)
		}
	}

	return nil
}

func (r *serverRegistry) ExclusionRules(ctx context.Context) (models.ExclusionRules, error) {
	titlesText, _, err := r.store.GetText(ctx, models.TiddlersToNotSyncTitle)
	if err != nil {
		return models.ExclusionRules{}, fmt.Errorf("read title exclusions: %w", err)
	}
	prefixesText, _, err := r.store.GetText(ctx, models.TiddlersPrefixToNotSyncTitle)
	if err != nil {
		return models.ExclusionRules{}, fmt.Errorf("read prefix exclusions: %w", err)
	}
	return models.ParseExclusionRules(titlesText, prefixesText), nil
}
