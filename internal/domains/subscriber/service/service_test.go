package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tiara/config"
	"tiara/infras/otel/mocks"
	subscriberMocks "tiara/internal/domains/subscriber/mocks"
	"tiara/internal/domains/subscriber/model"
	"tiara/internal/domains/subscriber/model/dto"
	"tiara/internal/domains/subscriber/service"
	cacheMocks "tiara/shared/cache/mocks"
)

func TestSubscriberService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := subscriberMocks.NewMockSubscriber(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	t.Run("new subscription inserts and welcomes", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub model.Subscriber) error {
				assert.Equal(t, "ada@example.com", sub.Email)

				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		message, err := svc.Subscribe(context.Background(), dto.SubscribeRequest{Email: "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, service.WelcomeMessage, message)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("duplicate email is welcomed anyway", func(t *testing.T) {
		duplicate := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (subscriber): %w", duplicate))

		message, err := svc.Subscribe(context.Background(), dto.SubscribeRequest{Email: "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, service.WelcomeMessage, message)
	})

	t.Run("other store errors surface", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := svc.Subscribe(context.Background(), dto.SubscribeRequest{Email: "ada@example.com"})
		require.Error(t, err)
	})
}
