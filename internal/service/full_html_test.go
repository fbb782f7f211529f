package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/mock"
	"github.com/linonetwo/tw-mobile-sync/models"
)

func TestDownloadFullHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockServerRegistry(ctrl)
	peers := mock.NewMockPeerAdapter(ctrl)

	outputPath := filepath.Join(t.TempDir(), "index.html")
	active := activeServer(models.SyncedAt("20230615110000000"))
	const page = "<!doctype html><html></html>"

	registry.EXPECT().ListServers(gomock.Any()).Return([]models.ServerRecord{active}, nil)
	peers.EXPECT().FullHTML(gomock.Any(), active.Addr()).Return(page, nil)
	registry.EXPECT().SetActiveServer(gomock.Any(), active.Title, gomock.Any()).Return(nil)
	registry.EXPECT().SaveServer(gomock.Any(), active).Return(nil)

	svc := NewFullHTMLService(registry, peers, outputPath, logger.Nop())
	svc.(*fullHTMLService).now = func() time.Time {
		return time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	require.NoError(t, svc.DownloadFullHTML(context.Background()))

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, page, string(written))
}

func TestDownloadFullHTML_DisabledWithoutPath(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No registry or adapter calls expected.
	svc := NewFullHTMLService(mock.NewMockServerRegistry(ctrl), mock.NewMockPeerAdapter(ctrl), "", logger.Nop())

	assert.NoError(t, svc.DownloadFullHTML(context.Background()))
}

func TestDownloadFullHTML_NoActiveServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockServerRegistry(ctrl)

	registry.EXPECT().ListServers(gomock.Any()).Return([]models.ServerRecord{
		{Title: models.ServerTiddlerPrefix + "a", State: models.StateOnline},
	}, nil)

	svc := NewFullHTMLService(registry, mock.NewMockPeerAdapter(ctrl), "/tmp/unused.html", logger.Nop())

	assert.NoError(t, svc.DownloadFullHTML(context.Background()))
}
