//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/shared/event"
	gRepo "hotel/shared/repository"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	authHandler "hotel/internal/handlers/auth"

	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	bookingHandler "hotel/internal/handlers/booking"

	clientRepository "hotel/internal/domains/client/repository"
	clientService "hotel/internal/domains/client/service"
	clientHandler "hotel/internal/handlers/client"

	employeeRepository "hotel/internal/domains/employee/repository"
	employeeService "hotel/internal/domains/employee/service"
	employeeHandler "hotel/internal/handlers/employee"

	hotelServiceRepository "hotel/internal/domains/hotelservice/repository"
	hotelServiceService "hotel/internal/domains/hotelservice/service"
	hotelServiceHandler "hotel/internal/handlers/hotelservice"

	postRepository "hotel/internal/domains/post/repository"
	postService "hotel/internal/domains/post/service"
	postHandler "hotel/internal/handlers/post"

	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomHandler "hotel/internal/handlers/room"

	roomOrderRepository "hotel/internal/domains/roomorder/repository"
	roomOrderService "hotel/internal/domains/roomorder/service"
	roomOrderHandler "hotel/internal/handlers/roomorder"

	serviceOrderRepository "hotel/internal/domains/serviceorder/repository"
	serviceOrderService "hotel/internal/domains/serviceorder/service"
	serviceOrderHandler "hotel/internal/handlers/serviceorder"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	metrics.NewDefault,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
	gRepo.NewTransaction,
)

var personnelDomain = wire.NewSet(
	postRepository.New,
	postService.New,
	employeeRepository.New,
	employeeService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	clientRepository.New,
	clientService.New,
	hotelServiceRepository.New,
	hotelServiceService.New,
)

var orderDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	roomOrderRepository.New,
	roomOrderService.New,
	serviceOrderRepository.New,
	serviceOrderService.New,
)

var domains = wire.NewSet(
	personnelDomain,
	roomDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	clientHandler.New,
	employeeHandler.New,
	postHandler.New,
	roomHandler.New,
	hotelServiceHandler.New,
	bookingHandler.New,
	roomOrderHandler.New,
	serviceOrderHandler.New,
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
