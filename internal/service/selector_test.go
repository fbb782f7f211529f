package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linonetwo/tw-mobile-sync/internal/mock"
	"github.com/linonetwo/tw-mobile-sync/models"
)

func TestLocalChanges_AppliesExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	since := models.SyncedAt("20230615120000000")
	store.EXPECT().
		ChangedSince(gomock.Any(), since).
		Return([]models.TiddlerFields{
			{models.FieldTitle: "Secret"},
			{models.FieldTitle: "Temp/scratch"},
			{models.FieldTitle: "Normal"},
		}, nil)

	selector := NewDeltaSelector(store)
	rules := models.ParseExclusionRules("Secret", "Temp/")

	kept, err := selector.LocalChanges(context.Background(), since, rules)

	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "Normal", kept[0].Title())
}

func TestLocalChanges_NormalizesDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	modified := time.Date(2023, time.June, 15, 12, 34, 56, 789*int(time.Millisecond), time.UTC)
	store.EXPECT().
		ChangedSince(gomock.Any(), models.NeverSynced()).
		Return([]models.TiddlerFields{
			{models.FieldTitle: "T", models.FieldModified: modified},
		}, nil)

	selector := NewDeltaSelector(store)

	kept, err := selector.LocalChanges(context.Background(), models.NeverSynced(), models.ExclusionRules{})

	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "20230615123456789", kept[0][models.FieldModified])
}

func TestLocalChanges_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	store.EXPECT().
		ChangedSince(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db locked"))

	selector := NewDeltaSelector(store)

	_, err := selector.LocalChanges(context.Background(), models.NeverSynced(), models.ExclusionRules{})

	assert.ErrorContains(t, err, "query changed tiddlers")
}
