// Package server exposes the peer endpoints of the sync protocol — status,
// sync, client-info, and full-html — over the same document store the
// client side reconciles. Running it is optional: with no listen address
// configured the process acts as a pure client.
package server
