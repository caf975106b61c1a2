package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/portal/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Post("/session", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Delete("/session", h.Logout)
			r.Get("/payments", h.Payments)

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.Invoices)
				r.Get("/{id}/document", h.InvoiceDocument)
				r.Get("/{id}/preview", h.InvoicePreview)
				r.Get("/{id}/payment", h.PaymentState)

				r.Group(func(r chi.Router) {
					r.Use(mw.PaymentRateLimit)
					r.Post("/{id}/payment", h.StartPayment)
					r.Post("/{id}/payment/result", h.CompletePayment)
				})
			})
		})
	})

	return mux
}
