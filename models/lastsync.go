package models

// LastSync records when a server was last successfully reconciled. The zero
// value means "never synced", which is distinct from any real timestamp: a
// never-synced server's next round transmits the full local document set.
type LastSync struct {
	at     string
	synced bool
}

// NeverSynced returns the LastSync value for a server that has no completed
// round yet.
func NeverSynced() LastSync {
	return LastSync{}
}

// SyncedAt wraps a canonical wiki timestamp. An empty string is treated as
// never synced, which is how the absent lastSync field of a stored server
// tiddler reads back.
func SyncedAt(wikiDate string) LastSync {
	if wikiDate == "" {
		return LastSync{}
	}
	return LastSync{at: wikiDate, synced: true}
}

// Synced reports whether a completed round has been recorded.
func (ls LastSync) Synced() bool {
	return ls.synced
}

// Value returns the recorded wiki timestamp and whether one exists.
func (ls LastSync) Value() (string, bool) {
	return ls.at, ls.synced
}

// WireValue returns the timestamp to place in a lastSync wire field: the
// recorded value, or "" when never synced (the field is then omitted).
func (ls LastSync) WireValue() string {
	return ls.at
}

func (ls LastSync) String() string {
	if !ls.synced {
		return "never"
	}
	return ls.at
}
