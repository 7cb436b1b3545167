package mastery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.StartSession)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Post("/answer", h.AnswerQuestion)
		r.Post("/next", h.NextQuestion)
		r.Post("/proceed", h.ProceedLevel)
		r.Delete("/", h.AbandonSession)
	})
	return r
}
