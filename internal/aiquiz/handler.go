package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

type Handler struct {
	service  Service
	chapters chapter.Service
}

func NewHandler(s Service, chapters chapter.Service) *Handler {
	return &Handler{service: s, chapters: chapters}
}

// GenerateQuestions godoc
// @Summary   Generate a practice question set
// @Tags      ai-quiz
// @Accept    json
// @Produce   json
// @Param     body  body      PracticeRequest  true  "Chapter and mode"
// @Success   201   {object}  PracticeResponse
// @Failure   404   {string}  string
// @Failure   502   {string}  string
// @Security  BearerAuth
// @Router    /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Mode == "" {
		req.Mode = PracticeModePractice
	}
	if req.Mode != PracticeModePractice && req.Mode != PracticeModeTest {
		http.Error(w, "invalid mode", http.StatusBadRequest)
		return
	}

	ch, err := h.chapters.Get(req.ChapterID)
	if errors.Is(err, chapter.ErrChapterNotFound) {
		http.Error(w, "chapter not found", http.StatusNotFound)
		return
	}

	questions, err := h.service.GeneratePractice(r.Context(), ch.Name, ch.IsBiology(), req.Mode)
	if err != nil {
		log.WithError(err).Errorf("Failed to generate practice questions for %s", ch.ID)
		http.Error(w, "our AI engine is currently busy, please try again", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusCreated, PracticeResponse{
		ChapterID: ch.ID,
		Mode:      string(req.Mode),
		Questions: questions,
	})
}
