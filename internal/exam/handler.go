package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

type Handler struct {
	service ExamService
}

func NewHandler(s ExamService) *Handler {
	return &Handler{service: s}
}

// ListExams godoc
// @Summary   Completed exam history
// @Tags      exams
// @Produce   json
// @Success   200  {array}  ExamRecord
// @Security  BearerAuth
// @Router    /exams [get]
func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated for exam history")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	config.JSON(w, http.StatusOK, h.service.List(r.Context(), claims.UserID))
}

// GetBestScore godoc
// @Summary   Best score for a chapter
// @Tags      exams
// @Produce   json
// @Param     chapterId  path      string  true  "Chapter id"
// @Success   200        {object}  BestScoreResponse
// @Security  BearerAuth
// @Router    /exams/best/{chapterId} [get]
func (h *Handler) GetBestScore(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	chapterID := chi.URLParam(r, "chapterId")
	config.JSON(w, http.StatusOK, BestScoreResponse{
		ChapterID: chapterID,
		Score:     h.service.BestScore(r.Context(), claims.UserID, chapterID),
	})
}
