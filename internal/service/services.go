package service

import (
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/adapter"
	"github.com/linonetwo/tw-mobile-sync/internal/config"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
)

// Services aggregates the sync core's collaborating services, wired once at
// process start.
type Services struct {
	Notifier     Notifier
	Prober       StatusProber
	Selector     DeltaSelector
	Executor     SyncExecutor
	ClientStatus ClientStatusService
	FullHTML     FullHTMLService
}

// NewServices wires the service layer over the store and the peer adapter.
func NewServices(
	store wikistore.TiddlerStore,
	registry wikistore.ServerRegistry,
	peers adapter.PeerAdapter,
	display DisplayFunc,
	cfg config.Sync,
	log *logger.Logger,
) *Services {
	statusTimeout := cfg.StatusTimeout
	if statusTimeout <= 0 {
		statusTimeout = 3 * time.Second
	}

	notifier := NewNotifier(store, display, log)
	selector := NewDeltaSelector(store)

	return &Services{
		Notifier:     notifier,
		Prober:       NewStatusProber(peers, notifier, statusTimeout, log),
		Selector:     selector,
		Executor:     NewSyncExecutor(store, registry, selector, peers, notifier, log),
		ClientStatus: NewClientStatusService(store, registry, peers, log),
		FullHTML:     NewFullHTMLService(registry, peers, cfg.FullHTMLPath, log),
	}
}
