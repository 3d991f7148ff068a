//go:build wireinject
// +build wireinject

package di

import (
	"deskhub/config"
	"deskhub/infras/jwt"
	"deskhub/infras/kafka"
	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/infras/redis"
	"deskhub/infras/s3"
	"deskhub/permissions"
	"deskhub/shared/cache"
	"deskhub/transport/http"
	"deskhub/transport/http/middleware"
	"deskhub/transport/http/router"

	imageRepository "deskhub/internal/domains/image/repository"
	imageService "deskhub/internal/domains/image/service"
	notificationService "deskhub/internal/domains/notification/service"
	officeRepository "deskhub/internal/domains/office/repository"
	officeService "deskhub/internal/domains/office/service"
	reservationRepository "deskhub/internal/domains/reservation/repository"
	tagRepository "deskhub/internal/domains/tag/repository"
	tagService "deskhub/internal/domains/tag/service"
	userRepository "deskhub/internal/domains/user/repository"

	healthHandler "deskhub/internal/handlers/health"
	officeHandler "deskhub/internal/handlers/office"
	tagHandler "deskhub/internal/handlers/tag"

	"github.com/google/wire"
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
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthScopeMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var officeDomain = wire.NewSet(
	officeRepository.New,
	officeService.New,
)

var imageDomain = wire.NewSet(
	imageRepository.New,
	imageService.New,
)

var tagDomain = wire.NewSet(
	tagRepository.New,
	tagService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var domains = wire.NewSet(
	officeDomain,
	imageDomain,
	tagDomain,
	reservationDomain,
	userDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	officeHandler.New,
	tagHandler.New,
	healthHandler.New,
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
