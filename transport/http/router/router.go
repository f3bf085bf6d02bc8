package router

import (
	"net/http"

	"hotel/config"
	_ "hotel/docs" // swagger docs
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/client"
	"hotel/internal/handlers/employee"
	"hotel/internal/handlers/hotelservice"
	"hotel/internal/handlers/post"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/roomorder"
	"hotel/internal/handlers/serviceorder"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Client       client.Handler
	Employee     employee.Handler
	Post         post.Handler
	Room         room.Handler
	Service      hotelservice.Handler
	Booking      booking.Handler
	RoomOrder    roomorder.Handler
	ServiceOrder serviceorder.Handler
}

// Mount registers every domain's routes on router.
func (d *DomainHandlers) Mount(router chi.Router) {
	d.Auth.Router(router)
	d.Client.Router(router)
	d.Employee.Router(router)
	d.Post.Router(router)
	d.Room.Router(router)
	d.Service.Router(router)
	d.Booking.Router(router)
	d.RoomOrder.Router(router)
	d.ServiceOrder.Router(router)
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID, chiMiddleware.Recoverer)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.App.Tracing, r.App.Metrics)

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())

		if r.Config.App.Auth.Enable {
			routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)
		}

		r.DomainHandlers.Mount(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
		Config:         cfg,
	}
}
