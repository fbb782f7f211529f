package models

import (
	"fmt"
	"strings"
)

// SyncRequest is the body of one sync exchange: the client's locally changed
// documents plus the lastSync timestamp both sides compute their delta
// against. LastSync is omitted on the first ever round.
type SyncRequest struct {
	Tiddlers []TiddlerFields `json:"tiddlers"`
	LastSync string          `json:"lastSync,omitempty"`
}

// ServerStatus is the status endpoint's response. A response counts as a
// live server only when it carries a recognizable version marker.
type ServerStatus struct {
	TiddlyWikiVersion string `json:"tiddlywiki_version"`
	Application       string `json:"application,omitempty"`
}

// Recognized reports whether the response identifies a live wiki server.
func (s ServerStatus) Recognized() bool {
	return s.TiddlyWikiVersion != ""
}

// changedTitleDisplayLimit caps how many changed-document captions a result
// notification lists per direction before collapsing to "And N more".
const changedTitleDisplayLimit = 5

// SyncResult summarises one completed reconciliation round.
type SyncResult struct {
	Sent     []TiddlerFields
	Received []TiddlerFields
}

// Summary renders the user-facing completion notification: counts in both
// directions plus up to five sample captions per direction with an overflow
// count.
func (r SyncResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sync Complete ↑ %d ↓ %d", len(r.Sent), len(r.Received))
	if len(r.Sent) > 0 {
		b.WriteString("\n\n↑: ")
		b.WriteString(sampleLine(r.Sent))
	}
	if len(r.Received) > 0 {
		b.WriteString("\n\n↓: ")
		b.WriteString(sampleLine(r.Received))
	}
	return b.String()
}

func sampleLine(tiddlers []TiddlerFields) string {
	names := make([]string, 0, changedTitleDisplayLimit)
	for i, t := range tiddlers {
		if i == changedTitleDisplayLimit {
			break
		}
		names = append(names, t.DisplayName())
	}
	line := strings.Join(names, " ")
	if overflow := len(tiddlers) - changedTitleDisplayLimit; overflow > 0 {
		line += fmt.Sprintf(" And %d more", overflow)
	}
	return line
}
