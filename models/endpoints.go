package models

// Peer endpoint paths, shared by the HTTP client and the serving side.
const (
	StatusEndpointPath     = "/tw-mobile-sync/status"
	SyncEndpointPath       = "/tw-mobile-sync/sync"
	ClientInfoEndpointPath = "/tw-mobile-sync/get-client-info"
	FullHTMLEndpointPath   = "/tw-mobile-sync/get-full-html"
)
