package plan

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/user"
)

type Handler struct {
	service PlanService
}

func NewHandler(s PlanService) *Handler {
	return &Handler{service: s}
}

// ListPlans godoc
// @Summary  Subscription plans
// @Tags     plans
// @Produce  json
// @Success  200  {array}  Plan
// @Router   /plans [get]
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.List())
}

// Subscribe godoc
// @Summary   Buy a plan
// @Tags      plans
// @Produce   json
// @Param     id   path      string  true  "Plan id"
// @Success   200  {object}  SubscribeResponse
// @Failure   404  {string}  string
// @Security  BearerAuth
// @Router    /plans/{id}/subscribe [post]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := h.service.Subscribe(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, user.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.WithError(err).Error("Subscription failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, res)
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListPlans)
	r.With(auth.AuthMiddleware).Post("/{id}/subscribe", h.Subscribe)
	return r
}
