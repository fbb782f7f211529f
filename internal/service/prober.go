// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/adapter"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type statusProber struct {
	peers    adapter.PeerAdapter
	notifier Notifier
	timeout  time.Duration
	logger   *logger.Logger
}

// NewStatusProber creates the [StatusProber]. The timeout is only used for
// the notification text; the adapter owns the actual probe budget.
func NewStatusProber(peers adapter.PeerAdapter, notifier Notifier, timeout time.Duration, log *logger.Logger) StatusProber {
	return &statusProber{peers: peers, notifier: notifier, timeout: timeout, logger: log}
}

// ProbeAll fans out one probe goroutine per server and joins before
// returning, so probing is concurrent while the caller's writeback stays
// sequential.
func (p *statusProber) ProbeAll(ctx context.Context, servers []models.ServerRecord, activeTitle string) []models.ServerRecord {
	probed := make([]models.ServerRecord, len(servers))

	var wg sync.WaitGroup
	for i, server := range servers {
		wg.Add(1)
		go func(i int, server models.ServerRecord) {
			defer wg.Done()
			probed[i] = p.probeOne(ctx, server, server.Title == activeTitle)
		}(i, server)
	}
	wg.Wait()

	return probed
}

func (p *statusProber) probeOne(ctx context.Context, server models.ServerRecord, active bool) models.ServerRecord {
	_, err := p.peers.Status(ctx, server.Addr())
	if err == nil {
		server.State = models.ReachabilityState(true, active)
		return server
	}

	if errors.Is(err, adapter.ErrStatusTimeout) {
		p.notifier.Notify(ctx, fmt.Sprintf("GetServerStatus Timeout after %ds", int(p.timeout.Seconds())))
	} else {
		p.logger.Err(err).
			Str("func", "statusProber.probeOne").
			Str("server", server.Name).
			Msg("status probe failed")
		p.notifier.Notify(ctx, "GetServerStatus Failed "+err.Error())
	}

	server.State = models.ReachabilityState(false, active)
	return server
}
