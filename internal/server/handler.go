package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/service"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

// Handler serves the peer endpoints over the document store.
type Handler struct {
	store    wikistore.TiddlerStore
	registry wikistore.ServerRegistry
	selector service.DeltaSelector

	wikiVersion string
	appName     string

	mu      sync.Mutex
	clients map[string]models.ClientInfo

	logger *logger.Logger
	now    func() time.Time
}

// NewHandler creates the peer endpoint handler. wikiVersion is the version
// marker the status endpoint reports; probers recognise the server by it.
func NewHandler(
	store wikistore.TiddlerStore,
	registry wikistore.ServerRegistry,
	selector service.DeltaSelector,
	wikiVersion, appName string,
	log *logger.Logger,
) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		store:       store,
		registry:    registry,
		selector:    selector,
		wikiVersion: wikiVersion,
		appName:     appName,
		clients:     make(map[string]models.ClientInfo),
		logger:      log,
		now:         time.Now,
	}
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// rememberClient updates the connected-client map from the request's
// origin. Origin-less requests are keyed by remote address.
func (h *Handler) rememberClient(r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = r.RemoteAddr
	}

	nowStr := models.FormatWikiDate(h.now())

	h.mu.Lock()
	defer h.mu.Unlock()

	client, known := h.clients[origin]
	if !known {
		client = models.ClientInfo{
			Origin:      origin,
			Address:     r.RemoteAddr,
			UserAgent:   r.UserAgent(),
			ConnectedAt: nowStr,
		}
	}
	client.LastSeen = nowStr
	h.clients[origin] = client
}
