package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tiara/config"
	"tiara/infras/otel/mocks"
	settingsMocks "tiara/internal/domains/settings/mocks"
	"tiara/internal/domains/settings/model"
	"tiara/internal/domains/settings/model/dto"
	"tiara/internal/domains/settings/service"
	cacheMocks "tiara/shared/cache/mocks"
	"tiara/shared/failure"
)

func newService(t *testing.T) (service.Settings, *settingsMocks.MockSettings, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestSettingsService_GetAlert(t *testing.T) {
	t.Run("cache miss reads from store", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAlert(gomock.Any()).Return(model.SiteAlert{
			ID:      model.SiteAlertSingletonID,
			Visible: true,
			Message: "Closed for a private event this Friday.",
		}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetAlert(context.Background())
		require.NoError(t, err)
		assert.True(t, res.Visible)
		assert.Equal(t, "Closed for a private event this Friday.", res.Message)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestSettingsService_SetAlert(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockRepo.EXPECT().
		SaveAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert model.SiteAlert) error {
			assert.Equal(t, model.SiteAlertSingletonID, alert.ID)
			assert.True(t, alert.Visible)

			return nil
		})
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := svc.SetAlert(context.Background(), dto.SetAlertRequest{Visible: true, Message: "Holiday hours"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
}

func TestSettingsService_BlockDate(t *testing.T) {
	t.Run("valid date blocks and notifies", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			BlockDate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, blocked model.BlockedDate) error {
				assert.Equal(t, "2026-12-25", blocked.Date.Format("2006-01-02"))

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.BlockDate(context.Background(), dto.BlockDateRequest{Date: "2026-12-25"})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.BlockDate(context.Background(), dto.BlockDateRequest{Date: "25/12/2026"})
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSettingsService_UnblockDate(t *testing.T) {
	t.Run("unblocking an absent date is a no-op", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().UnblockDate(gomock.Any(), gomock.Any()).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.UnblockDate(context.Background(), "2026-12-26")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.UnblockDate(context.Background(), "not-a-date")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestSettingsService_Watch(t *testing.T) {
	svc, _, mockCache := newService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 2)
	payloads <- `{"kind":"alert","at":"2026-08-29T10:00:00Z"}`
	payloads <- `not json`
	close(payloads)

	mockCache.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return((<-chan string)(payloads))

	changes := svc.Watch(ctx)

	change, ok := <-changes
	require.True(t, ok)
	assert.Equal(t, dto.ChangeKindAlert, change.Kind)

	// The malformed payload is dropped and the channel closes with the
	// subscription.
	_, ok = <-changes
	assert.False(t, ok)
}
