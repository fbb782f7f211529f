// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package models

import (
	"fmt"
	"net"
	"strconv"
)

// ConnectionState is the compound display state of a known server: plain
// online/offline for reachability, with the Active suffix overlaid on the
// single server currently selected as the sync target.
type ConnectionState string

const (
	StateOnline        ConnectionState = "online"
	StateOffline       ConnectionState = "offline"
	StateOnlineActive  ConnectionState = "onlineActive"
	StateOfflineActive ConnectionState = "offlineActive"
)

// Online reports whether the state's reachability half is online.
func (s ConnectionState) Online() bool {
	return s == StateOnline || s == StateOnlineActive
}

// Active reports whether the state carries the Active overlay.
func (s ConnectionState) Active() bool {
	return s == StateOnlineActive || s == StateOfflineActive
}

// WithActive re-overlays the Active suffix without touching reachability.
func (s ConnectionState) WithActive(active bool) ConnectionState {
	return ReachabilityState(s.Online(), active)
}

// ReachabilityState combines an independently probed reachability result
// with the active-server identity comparison into the compound state.
func ReachabilityState(online, active bool) ConnectionState {
	switch {
	case online && active:
		return StateOnlineActive
	case online:
		return StateOnline
	case active:
		return StateOfflineActive
	default:
		return StateOffline
	}
}

// ServerRecord is one known remote peer, persisted as a tiddler. The title
// is the stable key; the record is created externally and never deleted by
// the sync core — only its state and lastSync are mutated.
type ServerRecord struct {
	Title     string
	IPAddress string
	Port      int
	Name      string
	State     ConnectionState
	LastSync  LastSync
}

// Addr returns the host:port the server's endpoints live at.
func (r ServerRecord) Addr() string {
	return net.JoinHostPort(r.IPAddress, strconv.Itoa(r.Port))
}

// Fields renders the record into its stored tiddler representation. The
// connection state lives in the text field; lastSync is omitted when the
// server has never been synced.
func (r ServerRecord) Fields() TiddlerFields {
	fields := TiddlerFields{
		FieldTitle:  r.Title,
		FieldIPAddr: r.IPAddress,
		FieldPort:   r.Port,
		FieldName:   r.Name,
		FieldText:   string(r.State),
	}
	if at, ok := r.LastSync.Value(); ok {
		fields[FieldLastSync] = at
	}
	return fields
}

// ServerRecordFromFields reads a server record back out of its tiddler.
func ServerRecordFromFields(fields TiddlerFields) (ServerRecord, error) {
	title := fields.Title()
	if title == "" {
		return ServerRecord{}, fmt.Errorf("server tiddler without a title")
	}

	port := 0
	switch v := fields[FieldPort].(type) {
	case float64: // JSON numbers decode as float64
		port = int(v)
	case int:
		port = v
	case string:
		p, err := strconv.Atoi(v)
		if err != nil {
			return ServerRecord{}, fmt.Errorf("server tiddler %q: bad port %q", title, v)
		}
		port = p
	}

	return ServerRecord{
		Title:     title,
		IPAddress: fields.stringField(FieldIPAddr),
		Port:      port,
		Name:      fields.stringField(FieldName),
		State:     ConnectionState(fields.Text()),
		LastSync:  SyncedAt(fields.stringField(FieldLastSync)),
	}, nil
}
