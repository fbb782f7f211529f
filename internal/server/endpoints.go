// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package server

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	h.rememberClient(r)

	writeJSON(w, models.ServerStatus{
		TiddlyWikiVersion: h.wikiVersion,
		Application:       h.appName,
	}, http.StatusOK)
}

// sync is one half of a delta exchange, seen from the serving side: apply
// the client's changed documents, respond with ours. Both directions are
// filtered by the exclusion rules; the response delta is computed against
// the client's lastSync, each side computing its own half independently.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	h.rememberClient(r)

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	rules, err := h.registry.ExclusionRules(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error reading exclusion rules")
		http.Error(w, "error reading exclusion rules", http.StatusInternalServerError)
		return
	}

	// Our half of the delta is computed before applying the client's, so a
	// client does not receive back the documents it just sent.
	changedLocal, err := h.selector.LocalChanges(ctx, models.SyncedAt(syncRequest.LastSync), rules)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error computing local changes")
		http.Error(w, "error computing local changes", http.StatusInternalServerError)
		return
	}

	// All-or-nothing: a mid-batch failure must not leave the client's
	// documents half applied.
	if err = h.store.UpsertAll(ctx, rules.Filter(syncRequest.Tiddlers)); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error applying received tiddlers")
		http.Error(w, "error applying received tiddlers", http.StatusInternalServerError)
		return
	}

	if changedLocal == nil {
		changedLocal = []models.TiddlerFields{}
	}
	writeJSON(w, changedLocal, http.StatusOK)
}

func (h *Handler) clientInfo(w http.ResponseWriter, r *http.Request) {
	h.rememberClient(r)

	h.mu.Lock()
	clients := make(map[string]models.ClientInfo, len(h.clients))
	for origin, client := range h.clients {
		clients[origin] = client
	}
	h.mu.Unlock()

	writeJSON(w, clients, http.StatusOK)
}

// fullHTML renders every stored document into a single static page.
func (h *Handler) fullHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	h.rememberClient(r)

	tiddlers, err := h.store.ChangedSince(ctx, models.NeverSynced())
	if err != nil {
		log.Err(err).Str("func", "*Handler.fullHTML").Msg("error reading tiddlers")
		http.Error(w, "error reading tiddlers", http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head><meta charset=\"utf-8\"><title>TiddlyWiki</title></head>\n<body>\n")
	for _, tiddler := range tiddlers {
		fmt.Fprintf(&b, "<div data-tiddler-title=%q><pre>%s</pre></div>\n",
			tiddler.Title(), html.EscapeString(tiddler.Text()))
	}
	b.WriteString("</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(b.String()))
}
