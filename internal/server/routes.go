package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/linonetwo/tw-mobile-sync/models"
)

// Init builds the peer endpoint router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.Get(models.StatusEndpointPath, h.status)
	router.Post(models.SyncEndpointPath, h.sync)
	router.Get(models.ClientInfoEndpointPath, h.clientInfo)
	router.Get(models.FullHTMLEndpointPath, h.fullHTML)

	return router
}
