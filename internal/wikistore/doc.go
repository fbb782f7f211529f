// Package wikistore is the document store collaborator: a tiddler store
// backed by sqlite or postgres, plus the filtered views the sync core reads
// through it — the server registry, the active-server pointer, and the
// exclusion rules.
//
// The store is the source of truth for everything the coordinator persists:
// server records, the active-server pointer, connected-client state, and
// the documents being synchronized. Writes are synchronous and immediately
// visible to subsequent reads within the process.
package wikistore
