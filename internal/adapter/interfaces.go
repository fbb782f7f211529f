// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

// Package adapter provides the transport layer for talking to remote peers.
//
// The primary abstraction is [PeerAdapter], which decouples the sync
// services from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPPeerAdapter]) speaking the four peer endpoints.
//
// Error values defined in errors.go let callers classify failures with
// [errors.Is]: a status probe that ran out of its time budget wraps
// [ErrStatusTimeout], which the prober reports differently from other
// transport or parse failures.
package adapter

import (
	"context"

	"github.com/linonetwo/tw-mobile-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/peer_adapter_mock.go -package=mock

// PeerAdapter defines transport-agnostic communication with a remote peer.
// Implementations are responsible for serialisation, protocol headers, and
// mapping transport-level errors to the sentinel values defined in this
// package. Every method takes the peer's host:port address — the adapter
// holds no per-server state, so one adapter serves the whole registry.
type PeerAdapter interface {
	// Status issues the bounded health check against the peer's status
	// endpoint. A response only counts as success when it parses and
	// carries a recognizable version marker. A probe exceeding its time
	// budget returns an error wrapping [ErrStatusTimeout]; any other
	// transport or parse failure returns an ordinary error.
	Status(ctx context.Context, addr string) (models.ServerStatus, error)

	// Sync performs the one request/response delta exchange: it sends the
	// locally changed documents plus the lastSync timestamp, and returns
	// the documents the peer considers changed since that same point.
	// Returns an error on transport failure, non-2xx status, or a
	// malformed response body.
	Sync(ctx context.Context, addr string, req models.SyncRequest) ([]models.TiddlerFields, error)

	// ClientInfo fetches the peer's connected-client map, keyed by origin.
	ClientInfo(ctx context.Context, addr string) (map[string]models.ClientInfo, error)

	// FullHTML downloads the peer's full rendered document text.
	FullHTML(ctx context.Context, addr string) (string, error)
}
