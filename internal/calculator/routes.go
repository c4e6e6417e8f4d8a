package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/", h.GetState)
		r.Get("/keys", h.ListKeys)
		r.Post("/keys/{key}", h.PressKey)
		r.Post("/sequence", h.Sequence)
	})
}
