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
	guestMocks "tiara/internal/domains/guest/mocks"
	"tiara/internal/domains/guest/model"
	"tiara/internal/domains/guest/model/dto"
	"tiara/internal/domains/guest/service"
	cacheMocks "tiara/shared/cache/mocks"
	gDto "tiara/shared/dto"
	"tiara/shared/failure"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestGuestService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	guests := []model.Guest{
		{Email: "regular@example.com", Name: "Regular", Visits: 3},
		{Email: "vip@example.com", Name: "Very Important", Visits: 4},
	}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(guests, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, res.Guests, 2)

	// VIP strictly above the visit threshold.
	assert.False(t, res.Guests[0].VIP)
	assert.True(t, res.Guests[1].VIP)
	assert.Equal(t, 2, res.TotalData)

	time.Sleep(10 * time.Millisecond)
}

func TestGuestService_Update(t *testing.T) {
	t.Run("updates notes and phone", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Prefers the corner table", fields["notes"])

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{Notes: "Prefers the corner table"}, "ada@example.com")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown guest returns not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{Notes: "x"}, "ghost@example.com")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("empty update rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "ada@example.com")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
