package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/messages", h.SendMessage)
	r.Get("/messages", h.ListMessages)
	return r
}
