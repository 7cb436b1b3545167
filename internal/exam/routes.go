package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListExams)
	r.Get("/best/{chapterId}", h.GetBestScore)
	return r
}
