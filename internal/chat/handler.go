package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

type Handler struct {
	service ChatService
}

func NewHandler(s ChatService) *Handler {
	return &Handler{service: s}
}

// SendMessage streams the reply as Server-Sent Events.
//
// @Summary   Send a chat message
// @Tags      chat
// @Accept    json
// @Produce   text/event-stream
// @Param     body  body      SendRequest  true  "Message"
// @Success   200   {object}  Event
// @Failure   400   {string}  string
// @Failure   409   {string}  string
// @Security  BearerAuth
// @Router    /chat/messages [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("Response writer does not support streaming")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	started := false
	emit := func(e Event) {
		if !started {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("X-Accel-Buffering", "no")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		data, err := json.Marshal(e)
		if err != nil {
			log.WithError(err).Error("Failed to encode chat event")
			return
		}
		_, _ = fmt.Fprintf(w, "event: %s\n", e.Type)
		_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}

	_, err = h.service.Send(r.Context(), claims.UserID, req.Text, req.UseSearch, emit)
	switch {
	case errors.Is(err, ErrEmptyMessage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil && !started:
		log.WithError(err).Error("Chat send failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// ListMessages godoc
// @Summary   Chat history
// @Tags      chat
// @Produce   json
// @Success   200  {array}  Message
// @Security  BearerAuth
// @Router    /chat/messages [get]
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	config.JSON(w, http.StatusOK, h.service.History(r.Context(), claims.UserID))
}
