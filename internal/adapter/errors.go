package adapter

import "errors"

var (
	// ErrStatusTimeout marks a status probe that exceeded its time budget.
	// Classified separately so the prober can emit the distinct timeout
	// notification.
	ErrStatusTimeout = errors.New("status probe timeout")

	// ErrUnrecognizedServer marks a status response that parsed but carried
	// no version marker — the address answers HTTP but is not a wiki peer.
	ErrUnrecognizedServer = errors.New("unrecognized server status response")
)
