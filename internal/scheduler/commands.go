package scheduler

// CommandKind tags the commands the host UI posts to the coordinator.
type CommandKind int

const (
	// GetStatus requests a status re-probe of all known servers.
	GetStatus CommandKind = iota
	// SetActiveAndSync designates a new active server and starts a round.
	SetActiveAndSync
	// StartSync (re)starts the sync loop.
	StartSync
	// DownloadFullHTML downloads the active server's full document.
	DownloadFullHTML
)

// Command is one host event. Title is only meaningful for
// [SetActiveAndSync].
type Command struct {
	Kind  CommandKind
	Title string
}
