package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/auth"
	"github.com/AshleyKendi786/Delivery-App/internal/catalog"
	ordercontroller "github.com/AshleyKendi786/Delivery-App/internal/order/controller"
)

func NewRouter(
	authCtrl *auth.Controller,
	orderCtrl *ordercontroller.OrderController,
	catalogCtrl *catalog.Controller,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/signup", authCtrl.HandleSignup)
	r.Post("/login", authCtrl.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(tokens))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.HandleListAll)
			r.Get("/customer/{customerId}", orderCtrl.HandleListByCustomer)
			r.Post("/", orderCtrl.HandleCreate)
			r.Put("/{id}", orderCtrl.HandleUpdate)
			r.Delete("/{id}", orderCtrl.HandleDelete)
		})

		r.Get("/products", catalogCtrl.HandleListProducts)
	})

	return r
}
