package models

// Well-known tiddler titles and prefixes the coordinator persists its state
// under. Everything lives in the document store so it survives across ticks
// and process restarts.
const (
	// ActiveServerStateTiddlerTitle is the pointer tiddler naming the
	// currently active server (text = target title) with a denormalized
	// lastSync copy for fast reads.
	ActiveServerStateTiddlerTitle = "$:/state/tw-mobile-sync/active-server"

	// ClientStatusStateTiddlerTitle prefixes the per-origin connected-client
	// state tiddlers.
	ClientStatusStateTiddlerTitle = "$:/state/tw-mobile-sync/connected-clients"

	// NotificationTiddlerTitle is where human-readable status/result text is
	// written before the notifier displays it.
	NotificationTiddlerTitle = "$:/state/notification/tw-mobile-sync/notification"

	// ServerTiddlerPrefix is the title prefix under which known server
	// records are stored; the registry is the filtered view over it.
	ServerTiddlerPrefix = "$:/plugins/linonetwo/tw-mobile-sync/servers/"

	// TiddlersToNotSyncTitle holds the exact-title exclusion list as a
	// space-separated bracketed title list.
	TiddlersToNotSyncTitle = "$:/plugins/linonetwo/tw-mobile-sync/Config/TiddlersToNotSync"

	// TiddlersPrefixToNotSyncTitle holds the prefix exclusion list in the
	// same format.
	TiddlersPrefixToNotSyncTitle = "$:/plugins/linonetwo/tw-mobile-sync/Config/TiddlersPrefixToNotSync"
)
