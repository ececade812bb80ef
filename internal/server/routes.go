package server

import (
	"github.com/inkhouse/ecommerce-backend/internal/metrics"
)

func (s *Server) registerRoutes(h Handlers) {
	e := s.echo

	h.Health.RegisterRoutes(e)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")
	h.Product.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)

	h.User.RegisterRoutes(e)
}
