package companion

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

type ModeResponse struct {
	Mode BehaviorMode `json:"mode"`
}

type Handler struct {
	modes ModeStore
}

func NewHandler(modes ModeStore) *Handler {
	return &Handler{modes: modes}
}

// GetMode godoc
// @Summary   Current behaviour mode
// @Tags      companion
// @Produce   json
// @Success   200  {object}  ModeResponse
// @Security  BearerAuth
// @Router    /companion/mode [get]
func (h *Handler) GetMode(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	config.JSON(w, http.StatusOK, ModeResponse{Mode: h.modes.Mode(r.Context(), claims.UserID)})
}

// SetMode godoc
// @Summary   Set the behaviour mode
// @Tags      companion
// @Accept    json
// @Produce   json
// @Param     body  body      ModeResponse  true  "DARK, LIGHT or STUDY"
// @Success   200   {object}  ModeResponse
// @Failure   400   {string}  string
// @Security  BearerAuth
// @Router    /companion/mode [put]
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body ModeResponse
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Mode.IsValid() {
		http.Error(w, "mode must be DARK, LIGHT or STUDY", http.StatusBadRequest)
		return
	}

	h.modes.SetMode(r.Context(), claims.UserID, body.Mode)
	config.WithContext(r.Context()).Infof("Behavior mode set to %s", body.Mode)
	config.JSON(w, http.StatusOK, body)
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetMode)
	r.Put("/", h.SetMode)
	return r
}
