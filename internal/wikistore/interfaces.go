package wikistore

import (
	"context"

	"github.com/linonetwo/tw-mobile-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wikistore_mock.go -package=mock

// TiddlerStore is the document store contract the sync core depends on. An
// implementation must make writes immediately visible to subsequent reads
// within the same process.
type TiddlerStore interface {
	// Get returns the full field set of the tiddler with the given title,
	// and whether it exists.
	Get(ctx context.Context, title string) (models.TiddlerFields, bool, error)

	// Upsert writes the whole record, overwriting any existing tiddler with
	// the same title (no field-level merge). A missing modified field is
	// stamped with the current canonical wiki timestamp.
	Upsert(ctx context.Context, fields models.TiddlerFields) error

	// UpsertAll writes every record inside one transaction: either all of
	// them land or none do. An empty batch is a no-op.
	UpsertAll(ctx context.Context, tiddlers []models.TiddlerFields) error

	// GetText returns the text field of the named tiddler, and whether the
	// tiddler exists.
	GetText(ctx context.Context, title string) (string, bool, error)

	// ChangedSince returns all tiddlers modified strictly after the given
	// sync point; a never-synced point selects every tiddler (full initial
	// sync). Order is stable: modified timestamp, then title.
	ChangedSince(ctx context.Context, since models.LastSync) ([]models.TiddlerFields, error)

	// TitlesByPrefix returns the titles starting with prefix, in title
	// order — the declarative filter view the registry is built on.
	TitlesByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// ServerRegistry is the filtered view over the store exposing known server
// records and the active-server pointer. The registry never deletes server
// records; it only updates their state and lastSync.
type ServerRegistry interface {
	// ListServers returns all known server records in title order. An empty
	// result is valid (no known servers).
	ListServers(ctx context.Context) ([]models.ServerRecord, error)

	// SaveServer writes one server record back into its backing tiddler.
	SaveServer(ctx context.Context, rec models.ServerRecord) error

	// ActiveServerTitle returns the title the active-server pointer names,
	// or "" when no server is active.
	ActiveServerTitle(ctx context.Context) (string, error)

	// SetActiveServer persists the pointer tiddler (with a denormalized
	// lastSync copy) and mirrors lastSync onto the server's own tiddler.
	SetActiveServer(ctx context.Context, title string, lastSync models.LastSync) error

	// ExclusionRules reads both exclusion config tiddlers fresh.
	ExclusionRules(ctx context.Context) (models.ExclusionRules, error)
}
