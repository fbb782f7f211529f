package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/mock"
	"github.com/linonetwo/tw-mobile-sync/models"
)

func TestRefreshConnectedClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	registry := mock.NewMockServerRegistry(ctrl)
	peers := mock.NewMockPeerAdapter(ctrl)

	active := activeServer(models.NeverSynced())
	registry.EXPECT().ListServers(gomock.Any()).Return([]models.ServerRecord{active}, nil)
	peers.EXPECT().ClientInfo(gomock.Any(), active.Addr()).Return(map[string]models.ClientInfo{
		"http://192.168.1.20": {Origin: "http://192.168.1.20", UserAgent: "Mobile Safari"},
	}, nil)

	var stored models.TiddlerFields
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields models.TiddlerFields) error {
			stored = fields
			return nil
		})

	svc := NewClientStatusService(store, registry, peers, logger.Nop())
	err := svc.RefreshConnectedClients(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ClientStatusStateTiddlerTitle+"/http://192.168.1.20", stored.Title())
	assert.Equal(t, "Mobile Safari", stored["UserAgent"])
}

func TestRefreshConnectedClients_NoActiveServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockServerRegistry(ctrl)

	registry.EXPECT().ListServers(gomock.Any()).Return(nil, nil)

	svc := NewClientStatusService(mock.NewMockTiddlerStore(ctrl), registry, mock.NewMockPeerAdapter(ctrl), logger.Nop())

	assert.NoError(t, svc.RefreshConnectedClients(context.Background()))
}

func TestRefreshConnectedClients_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockServerRegistry(ctrl)
	peers := mock.NewMockPeerAdapter(ctrl)

	registry.EXPECT().ListServers(gomock.Any()).
		Return([]models.ServerRecord{activeServer(models.NeverSynced())}, nil)
	peers.EXPECT().ClientInfo(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	svc := NewClientStatusService(mock.NewMockTiddlerStore(ctrl), registry, peers, logger.Nop())

	assert.ErrorContains(t, svc.RefreshConnectedClients(context.Background()), "fetch client info")
}
