package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

const sessionTTL = 30 * 24 * time.Hour

type Handler struct {
	service UserService
	cookies *auth.Handler
}

func NewHandler(s UserService, cookies *auth.Handler) *Handler {
	return &Handler{service: s, cookies: cookies}
}

// Login godoc
// @Summary      Log in with phone or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Login details"
// @Success      200   {object}  LoginResponse
// @Failure      400   {string}  string
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid login body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidLogin) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateJWT(p.ID, "student", sessionTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.cookies.SetSessionCookie(w, token, sessionTTL)

	config.JSON(w, http.StatusOK, LoginResponse{User: p, Token: token})
}

// GetUser godoc
// @Summary   Current user profile
// @Tags      users
// @Produce   json
// @Success   200  {object}  Profile
// @Failure   404  {string}  string
// @Security  BearerAuth
// @Router    /users/me [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.service.Me(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		h.service.Logout(r.Context(), claims.UserID)
	}
	h.cookies.Logout(w, r)
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	config.JSON(w, http.StatusOK, ThemePayload{Theme: h.service.Theme(r.Context(), claims.UserID)})
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body ThemePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Theme.IsValid() {
		http.Error(w, "theme must be dark or light", http.StatusBadRequest)
		return
	}

	h.service.SetTheme(r.Context(), claims.UserID, body.Theme)
	config.JSON(w, http.StatusOK, body)
}
