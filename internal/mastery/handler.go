package mastery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

type Handler struct {
	service MasteryService
}

func NewHandler(s MasteryService) *Handler {
	return &Handler{service: s}
}

// StartSession godoc
// @Summary   Start a five-level mastery session
// @Tags      mastery
// @Accept    json
// @Produce   json
// @Param     body  body      StartRequest  true  "Chapter and latest mock score"
// @Success   201   {object}  Snapshot
// @Failure   403   {string}  string
// @Failure   404   {string}  string
// @Security  BearerAuth
// @Router    /mastery [post]
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to start a mastery session")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for mastery start")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.LastMarks < 0 || req.LastMarks > 720 {
		http.Error(w, "lastMarks must be between 0 and 720", http.StatusBadRequest)
		return
	}

	snap, err := h.service.Start(r.Context(), claims.UserID, req.ChapterID, req.LastMarks)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, snap)
}

// GetSession godoc
// @Summary   Session snapshot
// @Tags      mastery
// @Produce   json
// @Param     id   path      string  true  "Session id"
// @Success   200  {object}  Snapshot
// @Failure   404  {string}  string
// @Security  BearerAuth
// @Router    /mastery/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.service.Get(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

// AnswerQuestion godoc
// @Summary   Answer the current question
// @Tags      mastery
// @Accept    json
// @Produce   json
// @Param     id    path      string         true  "Session id"
// @Param     body  body      AnswerRequest  true  "Selected option"
// @Success   200   {object}  AnswerResult
// @Failure   400   {string}  string
// @Failure   409   {string}  string
// @Security  BearerAuth
// @Router    /mastery/{id}/answer [post]
func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Answer(r.Context(), claims.UserID, chi.URLParam(r, "id"), *req.Option)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, res)
}

// NextQuestion godoc
// @Summary   Move past the answered question
// @Tags      mastery
// @Produce   json
// @Param     id   path      string  true  "Session id"
// @Success   200  {object}  Snapshot
// @Failure   409  {string}  string
// @Security  BearerAuth
// @Router    /mastery/{id}/next [post]
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.service.Next(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

// ProceedLevel godoc
// @Summary   Start the next level
// @Tags      mastery
// @Produce   json
// @Param     id   path      string  true  "Session id"
// @Success   200  {object}  Snapshot
// @Failure   409  {string}  string
// @Security  BearerAuth
// @Router    /mastery/{id}/proceed [post]
func (h *Handler) ProceedLevel(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snap, err := h.service.Proceed(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, snap)
}

// AbandonSession godoc
// @Summary   Abandon a session
// @Tags      mastery
// @Param     id  path  string  true  "Session id"
// @Success   204
// @Failure   404  {string}  string
// @Security  BearerAuth
// @Router    /mastery/{id} [delete]
func (h *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Abandon(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, chapter.ErrChapterNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrChapterLocked):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrIllegalTransition), errors.Is(err, ErrNotAnswered),
		errors.Is(err, ErrAbandoned), errors.Is(err, ErrLoadInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
