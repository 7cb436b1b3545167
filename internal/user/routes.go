package user

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetUser)
	r.Get("/me/theme", h.GetTheme)
	r.Put("/me/theme", h.SetTheme)
	return r
}
