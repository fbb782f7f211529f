package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/adapter"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type fullHTMLService struct {
	registry   wikistore.ServerRegistry
	peers      adapter.PeerAdapter
	outputPath string
	logger     *logger.Logger
	now        func() time.Time
}

// NewFullHTMLService creates the [FullHTMLService]. An empty outputPath
// disables downloads.
func NewFullHTMLService(registry wikistore.ServerRegistry, peers adapter.PeerAdapter, outputPath string, log *logger.Logger) FullHTMLService {
	return &fullHTMLService{
		registry:   registry,
		peers:      peers,
		outputPath: outputPath,
		logger:     log,
		now:        time.Now,
	}
}

// DownloadFullHTML replaces the local rendered document with the active
// server's copy. The server records are snapshotted first and written back
// after, so the registry survives the overwrite.
func (s *fullHTMLService) DownloadFullHTML(ctx context.Context) error {
	if s.outputPath == "" {
		return nil
	}

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

	html, err := s.peers.FullHTML(ctx, active.Addr())
	if err != nil {
		s.logger.Err(err).
			Str("func", "fullHTMLService.DownloadFullHTML").
			Str("server", active.Name).
			Msg("full html download failed")
		return err
	}

	if err = os.WriteFile(s.outputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write full html to %q: %w", s.outputPath, err)
	}

	completedAt := models.SyncedAt(models.FormatWikiDate(s.now()))
	if err = s.registry.SetActiveServer(ctx, active.Title, completedAt); err != nil {
		return fmt.Errorf("advance lastSync after full html: %w", err)
	}

	// Write back the snapshotted records.
	for _, server := range servers {
		if err = s.registry.SaveServer(ctx, server); err != nil {
			return fmt.Errorf("restore server record %q: %w", server.Title, err)
		}
	}

	return nil
}
