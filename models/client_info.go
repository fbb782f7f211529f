package models

// ClientInfo describes one client currently connected to a desktop peer,
// keyed by origin in the client-info endpoint's response. Stored under the
// client-status prefix so the host UI can render a connected-client list.
type ClientInfo struct {
	Origin      string `json:"Origin"`
	Address     string `json:"Address,omitempty"`
	UserAgent   string `json:"UserAgent,omitempty"`
	ConnectedAt string `json:"ConnectedAt,omitempty"`
	LastSeen    string `json:"LastSeen,omitempty"`
}

// Fields renders the client info into its state tiddler.
func (c ClientInfo) Fields() TiddlerFields {
	fields := TiddlerFields{
		FieldTitle: ClientStatusStateTiddlerTitle + "/" + c.Origin,
		"Origin":   c.Origin,
	}
	if c.Address != "" {
		fields["Address"] = c.Address
	}
	if c.UserAgent != "" {
		fields["UserAgent"] = c.UserAgent
	}
	if c.ConnectedAt != "" {
		fields["ConnectedAt"] = c.ConnectedAt
	}
	if c.LastSeen != "" {
		fields["LastSeen"] = c.LastSeen
	}
	return fields
}
