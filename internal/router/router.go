package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/neet-mastery/mastery-lambda/docs"

	"github.com/neet-mastery/mastery-lambda/internal/aiquiz"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/chat"
	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
	"github.com/neet-mastery/mastery-lambda/internal/mastery"
	"github.com/neet-mastery/mastery-lambda/internal/metrics"
	"github.com/neet-mastery/mastery-lambda/internal/middlewares"
	"github.com/neet-mastery/mastery-lambda/internal/plan"
	"github.com/neet-mastery/mastery-lambda/internal/user"
	"github.com/neet-mastery/mastery-lambda/internal/voice"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	ChapterHandler   *chapter.Handler
	AIQuizHandler    *aiquiz.Handler
	MasteryHandler   *mastery.Handler
	ExamHandler      *exam.Handler
	PlanHandler      *plan.Handler
	CompanionHandler *companion.Handler
	ChatHandler      *chat.Handler
	VoiceHandler     *voice.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.With(auth.AuthMiddleware).Post("/logout", cfg.UserHandler.Logout)
	})

	r.Mount("/plans", plan.Routes(cfg.PlanHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/chapters", chapter.Routes(cfg.ChapterHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/mastery", mastery.Routes(cfg.MasteryHandler))
		r.Mount("/exams", exam.Routes(cfg.ExamHandler))
		r.Mount("/companion/mode", companion.Routes(cfg.CompanionHandler))
		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
		r.Mount("/voice", voice.Routes(cfg.VoiceHandler))
	})
	return r
}
