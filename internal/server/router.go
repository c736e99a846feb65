package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"stockroom/internal/analytics"
	"stockroom/internal/auth"
	ordercontroller "stockroom/internal/order/controller"
	"stockroom/internal/product"
	usercontroller "stockroom/internal/user/controller"
)

type Controllers struct {
	Auth      *auth.Controller
	Orders    *ordercontroller.Controller
	Products  *product.Controller
	Users     *usercontroller.Controller
	Analytics *analytics.Controller
}

func NewRouter(ctrl Controllers, authMW *auth.Middleware, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/auth/login", ctrl.Auth.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)

		r.Route("/api/orders", func(r chi.Router) {
			r.Get("/", ctrl.Orders.HandleListOrders)
			r.Post("/", ctrl.Orders.HandleCreateOrder)
			r.Put("/{id}/status", ctrl.Orders.HandleUpdateStatus)
			r.Delete("/{id}", ctrl.Orders.HandleDeleteOrder)
		})

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", ctrl.Products.HandleListProducts)
			r.Get("/low-stock", ctrl.Products.HandleLowStock)
			r.Post("/", ctrl.Products.HandleCreateProduct)
			r.Put("/{id}", ctrl.Products.HandleUpdateProduct)
			r.Put("/{id}/stock", ctrl.Products.HandleUpdateStock)
			r.Delete("/{id}", ctrl.Products.HandleDeleteProduct)
		})

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", ctrl.Users.HandleListUsers)
			r.Delete("/{id}", ctrl.Users.HandleDeleteUser)
		})

		r.Route("/api/analytics", func(r chi.Router) {
			r.Get("/admin", ctrl.Analytics.HandleAdminAnalytics)
			r.Get("/manager", ctrl.Analytics.HandleManagerAnalytics)
		})
	})

	return r
}
