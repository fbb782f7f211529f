package service

import (
	"context"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

// DisplayFunc is the host-side hook that renders the notification tiddler.
// It is optional; a nil hook leaves notifications in the store for the host
// UI to pick up.
type DisplayFunc func(title string)

type storeNotifier struct {
	store   wikistore.TiddlerStore
	display DisplayFunc
	logger  *logger.Logger
}

// NewNotifier creates a [Notifier] that writes the notification state
// tiddler and invokes the display hook.
func NewNotifier(store wikistore.TiddlerStore, display DisplayFunc, log *logger.Logger) Notifier {
	return &storeNotifier{store: store, display: display, logger: log}
}

func (n *storeNotifier) Notify(ctx context.Context, text string) {
	n.logger.Info().Str("notification", text).Msg("sync notification")

	err := n.store.Upsert(ctx, models.TiddlerFields{
		models.FieldTitle: models.NotificationTiddlerTitle,
		models.FieldText:  text,
	})
	if err != nil {
		// A failed notification write must never fail the round it reports.
		n.logger.Err(err).Msg("failed to write notification tiddler")
		return
	}

	if n.display != nil {
		n.display(models.NotificationTiddlerTitle)
	}
}
