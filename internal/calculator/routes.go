package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the stored calculation under /calculation and the
// stateless arithmetic under /calculator.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calculation", func(r chi.Router) {
		r.Get("/", h.GetCalculation)
		r.Get("/signs", h.ListSigns)
		r.Put("/sign", h.SetSign)
	})

	r.Route("/calculator", func(r chi.Router) {
		r.Post("/compute", h.Compute)
		r.Post("/add", h.Add)
		r.Post("/subtract", h.Subtract)
		r.Post("/multiply", h.Multiply)
		r.Post("/divide", h.Divide)
		r.Post("/chain", h.Chain)
	})
}
