package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tiara/config"
	"tiara/infras/otel"
	"tiara/internal/domains/settings/model/dto"
	"tiara/internal/domains/settings/repository"
	"tiara/shared/cache"
	"tiara/shared/constant"
	"tiara/shared/failure"
	"tiara/shared/timezone"
)

const (
	cacheGetAlert        = "settings:alert"
	cacheGetBlockedDates = "settings:blocked-dates"

	// changeChannel carries SettingsChange notifications to watchers.
	changeChannel = "settings:changed"
)

type Settings interface {
	GetAlert(ctx context.Context) (dto.SiteAlertResponse, error)
	SetAlert(ctx context.Context, req dto.SetAlertRequest) error
	GetBlockedDates(ctx context.Context) (dto.GetBlockedDatesResponse, error)
	BlockDate(ctx context.Context, req dto.BlockDateRequest) error
	UnblockDate(ctx context.Context, date string) error
	Watch(ctx context.Context) <-chan dto.SettingsChange
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAlert(ctx context.Context) (res dto.SiteAlertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAlert")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAlert, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAlert).Msg("cache hit for site alert")

		return res, nil
	}

	alert, err := s.repo.GetAlert(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get site alert")

		return res, fmt.Errorf("failed to get site alert: %w", err)
	}

	res.FromModel(alert)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAlert, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save site alert to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SetAlert(ctx context.Context, req dto.SetAlertRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAlert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.SaveAlert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to save site alert")

		return fmt.Errorf("failed to save site alert: %w", err)
	}

	s.notifyChange(ctx, dto.ChangeKindAlert, cacheGetAlert)

	return nil
}

func (s *serviceImpl) GetBlockedDates(ctx context.Context) (res dto.GetBlockedDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlockedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetBlockedDates, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetBlockedDates).Msg("cache hit for blocked dates")

		return res, nil
	}

	models, err := s.repo.GetBlockedDates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked dates")

		return res, fmt.Errorf("failed to get blocked dates: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetBlockedDates, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) BlockDate(ctx context.Context, req dto.BlockDateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	blocked, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse blocked date")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.BlockDate(ctx, blocked); err != nil {
		log.Error().Err(err).Msg("failed to block date")

		return fmt.Errorf("failed to block date: %w", err)
	}

	s.notifyChange(ctx, dto.ChangeKindBlockedDates, cacheGetBlockedDates)

	return nil
}

func (s *serviceImpl) UnblockDate(ctx context.Context, date string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnblockDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := time.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse blocked date")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.UnblockDate(ctx, parsed); err != nil {
		log.Error().Err(err).Msg("failed to unblock date")

		return fmt.Errorf("failed to unblock date: %w", err)
	}

	s.notifyChange(ctx, dto.ChangeKindBlockedDates, cacheGetBlockedDates)

	return nil
}

// Watch streams settings change notifications until the context is done.
func (s *serviceImpl) Watch(ctx context.Context) <-chan dto.SettingsChange {
	out := make(chan dto.SettingsChange)
	payloads := s.cache.Subscribe(ctx, changeChannel)

	go func() {
		defer close(out)

		for payload := range payloads {
			var change dto.SettingsChange
			if err := json.Unmarshal([]byte(payload), &change); err != nil {
				log.Error().Err(err).Msg("failed to decode settings change notification")

				continue
			}

			select {
			case out <- change:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (s *serviceImpl) notifyChange(ctx context.Context, kind, cacheKey string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheKey); err != nil {
			log.Error().Err(err).Msg("failed to invalidate settings cache")
		}

		change := dto.SettingsChange{Kind: kind, At: timezone.Now().Format(constant.DateFormat)}
		if err := s.cache.Publish(c, changeChannel, change); err != nil {
			log.Error().Err(err).Msg("failed to publish settings change notification")
		}
	}()
}
