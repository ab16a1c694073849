//go:build wireinject
// +build wireinject

package di

import (
	"tiara/config"
	"tiara/infras/jwt"
	"tiara/infras/kafka"
	"tiara/infras/mailer"
	"tiara/infras/otel"
	"tiara/infras/paystack"
	"tiara/infras/postgres"
	"tiara/infras/redis"
	"tiara/infras/s3"
	"tiara/shared/cache"
	"tiara/transport/http"
	"tiara/transport/http/middleware"
	"tiara/transport/http/router"

	"github.com/google/wire"

	authService "tiara/internal/domains/auth/service"
	exportRepository "tiara/internal/domains/export/repository"
	exportService "tiara/internal/domains/export/service"
	guestRepository "tiara/internal/domains/guest/repository"
	guestService "tiara/internal/domains/guest/service"
	menuRepository "tiara/internal/domains/menu/repository"
	menuService "tiara/internal/domains/menu/service"
	reservationRepository "tiara/internal/domains/reservation/repository"
	reservationService "tiara/internal/domains/reservation/service"
	settingsRepository "tiara/internal/domains/settings/repository"
	settingsService "tiara/internal/domains/settings/service"
	subscriberRepository "tiara/internal/domains/subscriber/repository"
	subscriberService "tiara/internal/domains/subscriber/service"
	userRepository "tiara/internal/domains/user/repository"
	userService "tiara/internal/domains/user/service"
	waitlistRepository "tiara/internal/domains/waitlist/repository"
	waitlistService "tiara/internal/domains/waitlist/service"

	authHandler "tiara/internal/handlers/auth"
	exportHandler "tiara/internal/handlers/export"
	guestHandler "tiara/internal/handlers/guest"
	menuHandler "tiara/internal/handlers/menu"
	reservationHandler "tiara/internal/handlers/reservation"
	settingsHandler "tiara/internal/handlers/settings"
	subscriberHandler "tiara/internal/handlers/subscriber"
	userHandler "tiara/internal/handlers/user"
	waitlistHandler "tiara/internal/handlers/waitlist"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mailer.New,
	paystack.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var waitlistDomain = wire.NewSet(
	waitlistRepository.New,
	waitlistService.New,
)

var subscriberDomain = wire.NewSet(
	subscriberRepository.New,
	subscriberService.New,
)

var exportDomain = wire.NewSet(
	exportRepository.New,
	exportService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	guestDomain,
	settingsDomain,
	menuDomain,
	waitlistDomain,
	subscriberDomain,
	exportDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	reservationHandler.New,
	guestHandler.New,
	menuHandler.New,
	settingsHandler.New,
	waitlistHandler.New,
	subscriberHandler.New,
	exportHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
