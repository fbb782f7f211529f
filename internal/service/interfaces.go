package service

import (
	"context"

	"github.com/linonetwo/tw-mobile-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Notifier surfaces human-readable status/result strings. The display side
// is an external collaborator; the core's contract is that every probe or
// sync failure and every completed round terminates in a notification.
type Notifier interface {
	// Notify records the text in the notification state tiddler and
	// triggers the display hook.
	Notify(ctx context.Context, text string)
}

// StatusProber issues the bounded health checks against all known servers.
type StatusProber interface {
	// ProbeAll probes every server concurrently, each with its own time
	// budget, and returns the records with their compound display state
	// updated (reachability plus the active overlay for activeTitle). One
	// server's failure never blocks or fails another's probe. The caller
	// writes the results back record-by-record after the join.
	ProbeAll(ctx context.Context, servers []models.ServerRecord, activeTitle string) []models.ServerRecord
}

// DeltaSelector computes the local half of a round's delta.
type DeltaSelector interface {
	// LocalChanges returns the documents modified strictly after since
	// (all documents when never synced), minus exclusions, with any date
	// values normalized for transmission. Deterministic for identical
	// store state and inputs.
	LocalChanges(ctx context.Context, since models.LastSync, rules models.ExclusionRules) ([]models.TiddlerFields, error)
}

// SyncExecutor performs one reconciliation round with the active server.
type SyncExecutor interface {
	// SyncOnce runs one delta exchange. Only called while the scheduler's
	// reconciliation lock is held. A missing or offline active server is a
	// no-op success. On success the active server's lastSync advances to
	// round-completion time; on any failure the store and lastSync are
	// left exactly as before.
	SyncOnce(ctx context.Context) (models.SyncResult, error)
}

// ClientStatusService refreshes the connected-client state tiddlers. Called
// fire-and-forget from every scheduler tick.
type ClientStatusService interface {
	RefreshConnectedClients(ctx context.Context) error
}

// FullHTMLService downloads the active server's full rendered document.
type FullHTMLService interface {
	// DownloadFullHTML fetches the document, writes it to the configured
	// path, advances lastSync, and writes the server records back so they
	// survive the overwrite.
	DownloadFullHTML(ctx context.Context) error
}
