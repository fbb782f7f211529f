// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/mock"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type handlerMocks struct {
	store    *mock.MockTiddlerStore
	registry *mock.MockServerRegistry
	selector *mock.MockDeltaSelector
}

func newTestHandler(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		store:    mock.NewMockTiddlerStore(ctrl),
		registry: mock.NewMockServerRegistry(ctrl),
		selector: mock.NewMockDeltaSelector(ctrl),
	}

	h := NewHandler(m.store, m.registry, m.selector, "5.2.3", "TidGi-Desktop", logger.Nop())
	h.now = func() time.Time {
		return time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return h.Init(), m
}

func TestStatusEndpoint(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, models.StatusEndpointPath, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	var status models.ServerStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "5.2.3", status.TiddlyWikiVersion)
	assert.Equal(t, "TidGi-Desktop", status.Application)
}

func TestStatusEndpoint_EchoesTraceID(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, models.StatusEndpointPath, nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestSyncEndpoint(t *testing.T) {
	router, m := newTestHandler(t)

	rules := models.ParseExclusionRules("Secret", "")
	m.registry.EXPECT().ExclusionRules(gomock.Any()).Return(rules, nil)
	m.selector.EXPECT().
		LocalChanges(gomock.Any(), models.SyncedAt("20230615110000000"), rules).
		Return([]models.TiddlerFields{{models.FieldTitle: "Ours"}}, nil)
	// The excluded incoming document is dropped, the other applied.
	m.store.EXPECT().
		UpsertAll(gomock.Any(), []models.TiddlerFields{{models.FieldTitle: "Theirs"}}).
		Return(nil)

	body := `{"tiddlers":[{"title":"Theirs"},{"title":"Secret"}],"lastSync":"20230615110000000"}`
	req := httptest.NewRequest(http.MethodPost, models.SyncEndpointPath, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var changed []models.TiddlerFields
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changed))
	require.Len(t, changed, 1)
	assert.Equal(t, "Ours", changed[0].Title())
}

func TestSyncEndpoint_FirstRoundSendsEverything(t *testing.T) {
	router, m := newTestHandler(t)

	m.registry.EXPECT().ExclusionRules(gomock.Any()).Return(models.ExclusionRules{}, nil)
	// No lastSync in the request means a never-synced delta.
	m.selector.EXPECT().
		LocalChanges(gomock.Any(), models.NeverSynced(), gomock.Any()).
		Return(nil, nil)
	m.store.EXPECT().UpsertAll(gomock.Any(), []models.TiddlerFields{}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, models.SyncEndpointPath, strings.NewReader(`{"tiddlers":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// A nil delta still serializes as an empty array, not null.
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSyncEndpoint_InvalidJSON(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, models.SyncEndpointPath, strings.NewReader(`{"tiddlers": [`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientInfoEndpoint(t *testing.T) {
	router, _ := newTestHandler(t)

	statusReq := httptest.NewRequest(http.MethodGet, models.StatusEndpointPath, nil)
	statusReq.Header.Set("Origin", "http://192.168.1.20")
	statusReq.Header.Set("User-Agent", "Mobile Safari")
	router.ServeHTTP(httptest.NewRecorder(), statusReq)

	req := httptest.NewRequest(http.MethodGet, models.ClientInfoEndpointPath, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var clients map[string]models.ClientInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
	client, ok := clients["http://192.168.1.20"]
	require.True(t, ok)
	assert.Equal(t, "Mobile Safari", client.UserAgent)
	assert.Equal(t, "20230615120000000", client.ConnectedAt)
}

func TestFullHTMLEndpoint(t *testing.T) {
	router, m := newTestHandler(t)

	m.store.EXPECT().ChangedSince(gomock.Any(), models.NeverSynced()).
		Return([]models.TiddlerFields{
			{models.FieldTitle: "Index", models.FieldText: "a < b"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, models.FullHTMLEndpointPath, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `data-tiddler-title="Index"`)
	assert.Contains(t, rec.Body.String(), "a &lt; b")
}

func TestHTTPServer_Shutdown(t *testing.T) {
	h := NewHandler(
		mock.NewMockTiddlerStore(gomock.NewController(t)),
		mock.NewMockServerRegistry(gomock.NewController(t)),
		mock.NewMockDeltaSelector(gomock.NewController(t)),
		"5.2.3", "TidGi-Desktop", logger.Nop(),
	)
	srv := NewHTTPServer("127.0.0.1:0", h, logger.Nop())

	done := make(chan struct{})
	go func() {
		srv.Run()
		close(done)
	}()

	// Give the listener a moment, then shut down.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}
