package router

import (
	"deskhub/internal/handlers/health"
	"deskhub/internal/handlers/office"
	"deskhub/internal/handlers/tag"
	"deskhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Office office.Handler
	Tag    tag.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthScope      middleware.AuthScope
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthScope.APIKey)
		routerGroup.Use(r.AuthScope.Auth)
		routerGroup.Use(r.AuthScope.Scopes)

		r.DomainHandlers.Office.Router(routerGroup)
		r.DomainHandlers.Tag.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authScope middleware.AuthScope) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthScope:      authScope,
	}
}
