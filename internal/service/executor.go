// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/adapter"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type syncExecutor struct {
	store    wikistore.TiddlerStore
	registry wikistore.ServerRegistry
	selector DeltaSelector
	peers    adapter.PeerAdapter
	notifier Notifier
	logger   *logger.Logger
	now      func() time.Time
}

// NewSyncExecutor creates the [SyncExecutor].
func NewSyncExecutor(
	store wikistore.TiddlerStore,
	registry wikistore.ServerRegistry,
	selector DeltaSelector,
	peers adapter.PeerAdapter,
	notifier Notifier,
	log *logger.Logger,
) SyncExecutor {
	return &syncExecutor{
		store:    store,
		registry: registry,
		selector: selector,
		peers:    peers,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

// SyncOnce runs one full delta exchange with the active server. The
// exchange is effectively atomic: application only begins after the full
// response has been received and parsed, and lastSync advances only after
// every received document is applied.
func (e *syncExecutor) SyncOnce(ctx context.Context) (models.SyncResult, error) {
	active, found, err := e.onlineActiveServer(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}
	if !found {
		// Nothing to reconcile against; not a failure.
		return models.SyncResult{}, nil
	}

	// Every failure from here on terminates in a notification, matching
	// the exchange path.
	result, err := e.round(ctx, active)
	if err != nil {
		e.logger.Err(err).
			Str("func", "syncExecutor.SyncOnce").
			Str("server", active.Name).
			Msg("sync round failed")
		e.notifier.Notify(ctx, "Sync Failed "+err.Error())
		return models.SyncResult{}, err
	}

	e.notifier.Notify(ctx, result.Summary())
	return result, nil
}

func (e *syncExecutor) round(ctx context.Context, active models.ServerRecord) (models.SyncResult, error) {
	// Re-read the rules each round in case the config tiddlers changed.
	rules, err := e.registry.ExclusionRules(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("read exclusion rules: %w", err)
	}

	changedLocal, err := e.selector.LocalChanges(ctx, active.LastSync, rules)
	if err != nil {
		return models.SyncResult{}, err
	}

	return e.exchange(ctx, active, rules, changedLocal)
}

func (e *syncExecutor) exchange(
	ctx context.Context,
	active models.ServerRecord,
	rules models.ExclusionRules,
	changedLocal []models.TiddlerFields,
) (models.SyncResult, error) {
	req := models.SyncRequest{
		Tiddlers: changedLocal,
		LastSync: active.LastSync.WireValue(),
	}

	received, err := e.peers.Sync(ctx, active.Addr(), req)
	if err != nil {
		return models.SyncResult{}, err
	}

	// The server should honor the exclusion rules; filter again in case it
	// does not.
	received = rules.Filter(received)

	// One transaction, blind overwrite by title: conflict resolution is
	// deferred, last writer wins, and a mid-batch failure applies nothing.
	if err = e.store.UpsertAll(ctx, received); err != nil {
		return models.SyncResult{}, fmt.Errorf("apply received tiddlers: %w", err)
	}

	// Completion time, not request time: documents modified during the
	// round trip are picked up again next round instead of being silently
	// dropped, at the cost of an occasional redundant re-send.
	completedAt := models.SyncedAt(models.FormatWikiDate(e.now()))
	if err = e.registry.SetActiveServer(ctx, active.Title, completedAt); err != nil {
		return models.SyncResult{}, fmt.Errorf("advance lastSync: %w", err)
	}

	return models.SyncResult{Sent: changedLocal, Received: received}, nil
}

func (e *syncExecutor) onlineActiveServer(ctx context.Context) (models.ServerRecord, bool, error) {
	servers, err := e.registry.ListServers(ctx)
	if err != nil {
		return models.ServerRecord{}, false, fmt.Errorf("list servers: %w", err)
	}
	for _, server := range servers {
		if server.State == models.StateOnlineActive {
			return server, true, nil
		}
	}
	return models.ServerRecord{}, false, nil
}
