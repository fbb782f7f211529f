package service

import (
	"context"
	"fmt"

	"github.com/linonetwo/tw-mobile-sync/internal/wikistore"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type deltaSelector struct {
	store wikistore.TiddlerStore
}

// NewDeltaSelector creates the [DeltaSelector] over the document store.
func NewDeltaSelector(store wikistore.TiddlerStore) DeltaSelector {
	return &deltaSelector{store: store}
}

func (s *deltaSelector) LocalChanges(ctx context.Context, since models.LastSync, rules models.ExclusionRules) ([]models.TiddlerFields, error) {
	changed, err := s.store.ChangedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("query changed tiddlers: %w", err)
	}

	kept := make([]models.TiddlerFields, 0, len(changed))
	for _, tiddler := range changed {
		if rules.Excludes(tiddler.Title()) {
			continue
		}
		kept = append(kept, tiddler.NormalizedDates())
	}

	return kept, nil
}
