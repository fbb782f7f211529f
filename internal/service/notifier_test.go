package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/internal/mock"
	"github.com/linonetwo/tw-mobile-sync/models"
)

func TestNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	store.EXPECT().
		Upsert(gomock.Any(), models.TiddlerFields{
			models.FieldTitle: models.NotificationTiddlerTitle,
			models.FieldText:  "Sync Complete ↑ 1 ↓ 0",
		}).
		Return(nil)

	var displayed []string
	notifier := NewNotifier(store, func(title string) {
		displayed = append(displayed, title)
	}, logger.Nop())

	notifier.Notify(context.Background(), "Sync Complete ↑ 1 ↓ 0")

	assert.Equal(t, []string{models.NotificationTiddlerTitle}, displayed)
}

func TestNotifier_Notify_StoreFailureSkipsDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)

	store.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	called := false
	notifier := NewNotifier(store, func(string) { called = true }, logger.Nop())

	notifier.Notify(context.Background(), "anything")

	assert.False(t, called)
}

func TestNotifier_Notify_NilDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockTiddlerStore(ctrl)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	notifier := NewNotifier(store, nil, logger.Nop())

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), "no hook wired")
	})
}
