// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

// Package scheduler owns the coordinator's single scheduling domain: one
// repeating timer and one reconciliation lock. It is instantiated once at
// process start and passed by handle to all entry points — there is no
// package-level state.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/service"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

// Scheduler drives the reconciliation loop. At most one round is in flight
// at any instant: ticks arriving while a round runs are dropped, not
// queued — tick-skipping is the backpressure mechanism.
type Scheduler struct {
	registry     wikistore.ServerRegistry
	prober       service.StatusProber
	executor     service.SyncExecutor
	clientStatus service.ClientStatusService
	fullHTML     service.FullHTMLService
	logger       *logger.Logger
	interval     time.Duration

	// inFlight is the reconciliation lock. A plain boolean rather than a
	// mutex: Start must be able to force-clear it to recover from a wedged
	// round, which no owner-checked lock allows.
	inFlight atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an idle Scheduler. Nothing runs until Start is called.
func New(
	registry wikistore.ServerRegistry,
	services *service.Services,
	interval time.Duration,
	log *logger.Logger,
) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		registry:     registry,
		prober:       services.Prober,
		executor:     services.Executor,
		clientStatus: services.ClientStatus,
		fullHTML:     services.FullHTML,
		logger:       log,
		interval:     interval,
	}
}

// Start stops any previously running loop, force-clears the reconciliation
// lock (the only recovery path from a round that never completed), runs one
// round synchronously, then arms the repeating timer. skipStatusCheck makes
// the immediate round reuse the status results of a probe that just
// happened; the timer's own ticks always re-probe.
//
// Only one loop exists process-wide; starting a new one supersedes the old.
func (s *Scheduler) Start(ctx context.Context, skipStatusCheck bool) {
	s.mu.Lock()
	if s.cancel != nil {
		// Supersede the previous loop without waiting for it: a wedged
		// round must not be able to block its own recovery.
		s.cancel()
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.inFlight.Store(false)

	s.tick(loopCtx, skipStatusCheck)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				s.tick(loopCtx, false)
			}
		}
	}()
}

// Stop cancels the loop and blocks until its goroutine has exited. Safe to
// call when nothing is running. A round already in flight is not
// interrupted; its lock release still runs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// tick is one firing of the loop: kick the best-effort client-status
// refresh, then run a reconciliation round unless one is already in flight.
func (s *Scheduler) tick(ctx context.Context, skipStatusCheck bool) {
	// Detached: the heartbeat is not part of the critical section and has
	// no ordering guarantee relative to the round.
	go func() {
		_ = s.clientStatus.RefreshConnectedClients(ctx)
	}()

	if !s.inFlight.CompareAndSwap(false, true) {
		// A round is still running; drop this tick entirely.
		return
	}
	defer s.inFlight.Store(false)

	if !skipStatusCheck {
		s.RefreshServerStatus(ctx)
	}
	if _, err := s.executor.SyncOnce(ctx); err != nil {
		// Already notified; the loop must survive every failure.
		s.logger.Debug().Err(err).Msg("sync round ended with error")
	}
}

// RefreshServerStatus probes all known servers concurrently and writes the
// updated records back one by one after all probes complete.
func (s *Scheduler) RefreshServerStatus(ctx context.Context) {
	servers, err := s.registry.ListServers(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Scheduler.RefreshServerStatus").Msg("cannot list servers")
		return
	}
	if len(servers) == 0 {
		return
	}

	activeTitle, err := s.registry.ActiveServerTitle(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Scheduler.RefreshServerStatus").Msg("cannot read active server pointer")
		return
	}

	for _, server := range s.prober.ProbeAll(ctx, servers, activeTitle) {
		if err = s.registry.SaveServer(ctx, server); err != nil {
			s.logger.Err(err).Str("server", server.Title).Msg("cannot write probed server state")
		}
	}
}

// SetActiveServerAndSync designates the named server as the sync target and
// restarts the loop with an immediate round. Unknown titles are ignored.
// Exactly one record carries an Active state afterwards: the previous
// holder's overlay is cleared in the same pass.
func (s *Scheduler) SetActiveServerAndSync(ctx context.Context, title string) {
	if title == "" {
		return
	}

	// Update status first so the new target's display state reflects
	// current reachability.
	s.RefreshServerStatus(ctx)

	servers, err := s.registry.ListServers(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Scheduler.SetActiveServerAndSync").Msg("cannot list servers")
		return
	}

	var target *models.ServerRecord
	for i := range servers {
		if servers[i].Title == title {
			target = &servers[i]
			break
		}
	}
	if target == nil {
		s.logger.Warn().Str("title", title).Msg("set-active ignored: unknown server")
		return
	}

	for _, server := range servers {
		isTarget := server.Title == title
		next := server.State.WithActive(isTarget)
		if next == server.State {
			continue
		}
		server.State = next
		if err = s.registry.SaveServer(ctx, server); err != nil {
			s.logger.Err(err).Str("server", server.Title).Msg("cannot flip active state")
			return
		}
	}

	if err = s.registry.SetActiveServer(ctx, title, target.LastSync); err != nil {
		s.logger.Err(err).Str("title", title).Msg("cannot persist active server pointer")
		return
	}

	// The immediate round skips the status probe that just ran.
	s.Start(ctx, true)
}

// Dispatch executes one host command.
func (s *Scheduler) Dispatch(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case GetStatus:
		s.RefreshServerStatus(ctx)
	case SetActiveAndSync:
		s.SetActiveServerAndSync(ctx, cmd.Title)
	case StartSync:
		s.Start(ctx, false)
	case DownloadFullHTML:
		if err := s.fullHTML.DownloadFullHTML(ctx); err != nil {
			s.logger.Err(err).Msg("full html download failed")
		}
	}
}

// Run consumes host commands until ctx is cancelled. The host UI layer
// posts commands on cmds; this is the single dispatch point for external
// events.
func (s *Scheduler) Run(ctx context.Context, cmds <-chan Command) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-cmds:
			if !ok {
				return
			}
			s.Dispatch(ctx, cmd)
		}
	}
}
