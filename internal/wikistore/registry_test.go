// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package wikistore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/mock"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

func TestServerRegistry_ListServers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	ctx := context.Background()

	titleA := models.ServerTiddlerPrefix + "a"
	titleB := models.ServerTiddlerPrefix + "b"

	store.EXPECT().TitlesByPrefix(ctx, models.ServerTiddlerPrefix).
		Return([]string{titleA, titleB}, nil)
	store.EXPECT().Get(ctx, titleA).Return(models.TiddlerFields{
		models.FieldTitle:  titleA,
		models.FieldIPAddr: "10.0.0.1",
		models.FieldPort:   float64(5212),
		models.FieldText:   "onlineActive",
	}, true, nil)
	store.EXPECT().Get(ctx, titleB).Return(models.TiddlerFields{
		models.FieldTitle:  titleB,
		models.FieldIPAddr: "10.0.0.2",
		models.FieldPort:   "not-a-port", // malformed, skipped with a warning
	}, true, nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())
	servers, err := registry.ListServers(ctx)

	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, titleA, servers[0].Title)
	assert.Equal(t, models.StateOnlineActive, servers[0].State)
	assert.Equal(t, 5212, servers[0].Port)
}

func TestServerRegistry_ActiveServerTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	ctx := context.Background()

	store.EXPECT().GetText(ctx, models.ActiveServerStateTiddlerTitle).
		Return(models.ServerTiddlerPrefix+"a", true, nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())
	title, err := registry.ActiveServerTitle(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.ServerTiddlerPrefix+"a", title)
}

func TestServerRegistry_ActiveServerTitle_NoPointer(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	store.EXPECT().GetText(gomock.Any(), models.ActiveServerStateTiddlerTitle).
		Return("", false, nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())
	title, err := registry.ActiveServerTitle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "", title)
}

func TestServerRegistry_SetActiveServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	ctx := context.Background()

	title := models.ServerTiddlerPrefix + "a"
	lastSync := models.SyncedAt("20230615120005000")

	store.EXPECT().Upsert(ctx, models.TiddlerFields{
		models.FieldTitle:    models.ActiveServerStateTiddlerTitle,
		models.FieldText:     title,
		models.FieldLastSync: "20230615120005000",
	}).Return(nil)
	store.EXPECT().Get(ctx, title).Return(models.TiddlerFields{
		models.FieldTitle: title,
		models.FieldText:  "onlineActive",
	}, true, nil)
	store.EXPECT().Upsert(ctx, models.TiddlerFields{
		models.FieldTitle:    title,
		models.FieldText:     "onlineActive",
		models.FieldLastSync: "20230615120005000",
	}).Return(nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())

	require.NoError(t, registry.SetActiveServer(ctx, title, lastSync))
}

func TestServerRegistry_SetActiveServer_NeverSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	ctx := context.Background()

	title := models.ServerTiddlerPrefix + "a"

	// No lastSync on the pointer and no mirror write.
	store.EXPECT().Upsert(ctx, models.TiddlerFields{
		models.FieldTitle: models.ActiveServerStateTiddlerTitle,
		models.FieldText:  title,
	}).Return(nil)
	store.EXPECT().Get(ctx, title).Return(models.TiddlerFields{models.FieldTitle: title}, true, nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())

	require.NoError(t, registry.SetActiveServer(ctx, title, models.NeverSynced()))
}

func TestServerRegistry_ExclusionRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	ctx := context.Background()

	store.EXPECT().GetText(ctx, models.TiddlersToNotSyncTitle).
		Return("Secret [[My Draft]]", true, nil)
	store.EXPECT().GetText(ctx, models.TiddlersPrefixToNotSyncTitle).
		Return("Temp/", true, nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())
	rules, err := registry.ExclusionRules(ctx)

	require.NoError(t, err)
	assert.True(t, rules.Excludes("Secret"))
	assert.True(t, rules.Excludes("My Draft"))
	assert.True(t, rules.Excludes("Temp/x"))
	assert.False(t, rules.Excludes("Normal"))
}

func TestServerRegistry_ExclusionRules_MissingConfigTiddlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	store.EXPECT().GetText(gomock.Any(), models.TiddlersToNotSyncTitle).Return("", false, nil)
	store.EXPECT().GetText(gomock.Any(), models.TiddlersPrefixToNotSyncTitle).Return("", false, nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())
	rules, err := registry.ExclusionRules(context.Background())

	require.NoError(t, err)
	assert.False(t, rules.Excludes("Anything"))
}

func TestServerRegistry_SaveServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	rec := models.ServerRecord{
		Title:     models.ServerTiddlerPrefix + "a",
		IPAddress: "10.0.0.1",
		Port:      5212,
		State:     models.StateOnline,
	}
	store.EXPECT().Upsert(gomock.Any(), rec.Fields()).Return(nil)

	registry := wikistore.NewServerRegistry(store, logger.Nop())

	require.NoError(t, registry.SaveServer(context.Background(), rec))
}
