package chapter

import (
	"context"
	"net/http"

	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

// SubscriptionChecker reports whether a user holds an active subscription.
type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, userID string) bool
}

type Handler struct {
	service       Service
	subscriptions SubscriptionChecker
}

func NewHandler(s Service, subscriptions SubscriptionChecker) *Handler {
	return &Handler{service: s, subscriptions: subscriptions}
}

// ListChapters godoc
// @Summary   Chapters of a subject with access flags
// @Tags      chapters
// @Produce   json
// @Param     subject  query     string  false  "Biology, Physics or Chemistry"
// @Param     class    query     string  false  "11 or 12"
// @Param     q        query     string  false  "Name search"
// @Success   200      {array}   ChapterView
// @Security  BearerAuth
// @Router    /chapters [get]
func (h *Handler) ListChapters(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated for chapter listing")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	subject := Subject(q.Get("subject"))
	if subject == "" {
		subject = SubjectBiology
	}
	if !subject.IsValid() {
		http.Error(w, "invalid subject", http.StatusBadRequest)
		return
	}

	subscribed := h.subscriptions.IsSubscribed(r.Context(), claims.UserID)
	chapters := h.service.List(subject, q.Get("class"), q.Get("q"))

	views := make([]ChapterView, 0, len(chapters))
	for _, c := range chapters {
		views = append(views, ChapterView{
			Chapter: c,
			Free:    h.service.IsFree(c),
			Locked:  !h.service.CanAccess(c, subscribed),
		})
	}

	config.JSON(w, http.StatusOK, views)
}
