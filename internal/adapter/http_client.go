package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/linonetwo/tw-mobile-sync/models"
)

// HTTPClientConfig configures the HTTP peer adapter.
type HTTPClientConfig struct {
	// AppName is sent as the X-Requested-With header on sync requests.
	AppName string
	// StatusTimeout bounds each status probe.
	StatusTimeout time.Duration
	// SyncTimeout bounds the sync POST so a hung exchange cannot wedge the
	// reconciliation lock.
	SyncTimeout time.Duration
}

type httpPeerAdapter struct {
	client        *resty.Client
	appName       string
	statusTimeout time.Duration
	syncTimeout   time.Duration
}

// NewHTTPPeerAdapter creates the HTTP/JSON [PeerAdapter]. Zero timeouts
// fall back to 3s for status probes and 30s for sync exchanges.
func NewHTTPPeerAdapter(cfg HTTPClientConfig) PeerAdapter {
	if cfg.AppName == "" {
		cfg.AppName = "TiddlyWiki"
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = 3 * time.Second
	}
	if cfg.SyncTimeout <= 0 {
		cfg.SyncTimeout = 30 * time.Second
	}

	return &httpPeerAdapter{
		client:        resty.New(),
		appName:       cfg.AppName,
		statusTimeout: cfg.StatusTimeout,
		syncTimeout:   cfg.SyncTimeout,
	}
}

func (h *httpPeerAdapter) Status(ctx context.Context, addr string) (models.ServerStatus, error) {
	probeCtx, cancel := context.WithTimeout(ctx, h.statusTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(probeCtx).
		Get(endpointURL(addr, models.StatusEndpointPath))
	if err != nil {
		if probeTimedOut(probeCtx, err) {
			return models.ServerStatus{}, fmt.Errorf("%w after %s", ErrStatusTimeout, h.statusTimeout)
		}
		return models.ServerStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerStatus{}, err
	}

	var status models.ServerStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.ServerStatus{}, fmt.Errorf("decode status response: %w", err)
	}
	if !status.Recognized() {
		return models.ServerStatus{}, ErrUnrecognizedServer
	}

	return status, nil
}

func (h *httpPeerAdapter) Sync(ctx context.Context, addr string, req models.SyncRequest) ([]models.TiddlerFields, error) {
	syncCtx, cancel := context.WithTimeout(ctx, h.syncTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(syncCtx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Requested-With", h.appName).
		SetBody(req).
		Post(endpointURL(addr, models.SyncEndpointPath))
	if err != nil {
		return nil, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var changed []models.TiddlerFields
	if err = json.Unmarshal(resp.Body(), &changed); err != nil {
		return nil, fmt.Errorf("decode sync response: %w", err)
	}

	return changed, nil
}

func (h *httpPeerAdapter) ClientInfo(ctx context.Context, addr string) (map[string]models.ClientInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(endpointURL(addr, models.ClientInfoEndpointPath))
	if err != nil {
		return nil, fmt.Errorf("client info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var clients map[string]models.ClientInfo
	if err = json.Unmarshal(resp.Body(), &clients); err != nil {
		return nil, fmt.Errorf("decode client info response: %w", err)
	}

	return clients, nil
}

func (h *httpPeerAdapter) FullHTML(ctx context.Context, addr string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Requested-With", h.appName).
		Get(endpointURL(addr, models.FullHTMLEndpointPath))
	if err != nil {
		return "", fmt.Errorf("full html request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func endpointURL(addr, path string) string {
	return "http://" + addr + path
}

// probeTimedOut distinguishes the probe's own deadline from other transport
// failures. The caller's ctx expiring is not a probe timeout.
func probeTimedOut(probeCtx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Is(probeCtx.Err(), context.DeadlineExceeded)
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
