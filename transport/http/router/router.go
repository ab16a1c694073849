package router

import (
	"tiara/internal/handlers/auth"
	"tiara/internal/handlers/export"
	"tiara/internal/handlers/guest"
	"tiara/internal/handlers/menu"
	"tiara/internal/handlers/reservation"
	"tiara/internal/handlers/settings"
	"tiara/internal/handlers/subscriber"
	"tiara/internal/handlers/user"
	"tiara/internal/handlers/waitlist"
	"tiara/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Reservation reservation.Handler
	Guest       guest.Handler
	Menu        menu.Handler
	Settings    settings.Handler
	Waitlist    waitlist.Handler
	Subscriber  subscriber.Handler
	Export      export.Handler
	User        user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		// Public surface: intake, payment verification and site content.
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Waitlist.Router(routerGroup)
		r.DomainHandlers.Subscriber.Router(routerGroup)

		routerGroup.Group(func(authedGroup chi.Router) {
			authedGroup.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Auth.AuthedRouter(authedGroup)
		})

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthMiddleware.Auth)
			adminGroup.Use(r.AuthMiddleware.RequireAdmin)

			r.DomainHandlers.Reservation.AdminRouter(adminGroup)
			r.DomainHandlers.Guest.AdminRouter(adminGroup)
			r.DomainHandlers.Menu.AdminRouter(adminGroup)
			r.DomainHandlers.Settings.AdminRouter(adminGroup)
			r.DomainHandlers.Waitlist.AdminRouter(adminGroup)
			r.DomainHandlers.Subscriber.AdminRouter(adminGroup)
			r.DomainHandlers.Export.AdminRouter(adminGroup)
			r.DomainHandlers.User.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
