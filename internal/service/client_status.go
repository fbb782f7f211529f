package service

import (
	"context"
	"fmt"

	"github.com/linonetwo/tw-mobile-sync/internal/adapter"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type clientStatusService struct {
	store    wikistore.TiddlerStore
	registry wikistore.ServerRegistry
	peers    adapter.PeerAdapter
	logger   *logger.Logger
}

// NewClientStatusService creates the [ClientStatusService]. It is
// best-effort: the scheduler fires it detached from the reconciliation
// critical section, with no ordering guarantee relative to the sync round.
func NewClientStatusService(
	store wikistore.TiddlerStore,
	registry wikistore.ServerRegistry,
	peers adapter.PeerAdapter,
	log *logger.Logger,
) ClientStatusService {
	return &clientStatusService{store: store, registry: registry, peers: peers, logger: log}
}

func (s *clientStatusService) RefreshConnectedClients(ctx context.Context) error {
	servers, err := s.registry.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("list servers: %w", err)
	}

	var active *models.ServerRecord
	for i := range servers {
		if servers[i].State == models.StateOnlineActive {
			active = &servers[i]
			break
		}
	}
	if active == nil {
		return nil
	}

	clients, err := s.peers.ClientInfo(ctx, active.Addr())
	if err != nil {
		s.logger.Debug().Err(err).
			Str("server", active.Name).
			Msg("connected-client refresh failed")
		return fmt.Errorf("fetch client info: %w", err)
	}

	for _, client := range clients {
		if err = s.store.Upsert(ctx, client.Fields()); err != nil {
			return fmt.Errorf("store client info %q: %w", client.Origin, err)
		}
	}

	return nil
}
