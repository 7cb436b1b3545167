package container

import (
	"context"
	"log"

	"google.golang.org/genai"

	"github.com/neet-mastery/mastery-lambda/internal/aiquiz"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/chat"
	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/event"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
	"github.com/neet-mastery/mastery-lambda/internal/mastery"
	"github.com/neet-mastery/mastery-lambda/internal/plan"
	"github.com/neet-mastery/mastery-lambda/internal/router"
	"github.com/neet-mastery/mastery-lambda/internal/store"
	"github.com/neet-mastery/mastery-lambda/internal/user"
	"github.com/neet-mastery/mastery-lambda/internal/voice"
)

const (
	defaultTextModel = "gemini-3-flash-preview"
	defaultLiveModel = "gemini-2.5-flash-native-audio-preview-12-2025"
)

type Container struct {
	StoreContainer   *store.Container
	UserContainer    *user.UserContainer
	ChapterContainer *chapter.ChapterContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	ExamContainer    *exam.ExamContainer
	MasteryContainer *mastery.MasteryContainer
	PlanHandler      *plan.Handler
	CompanionHandler *companion.Handler
	ChatContainer    *chat.ChatContainer
	VoiceContainer   *voice.VoiceContainer

	Publisher  event.Publisher
	RemoteSync user.RemoteSync
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	kvBackend := config.Getenv("KV_BACKEND", "memory")
	if kvBackend == "sql" {
		if err := config.Connect(ctx, config.Getenv("DB_DRIVER", "postgres"), config.Getenv("DATABASE_DSN", "")); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
	}

	storeContainer, err := store.NewContainer(ctx, kvBackend, store.RedisConfig{
		Addr:     config.Getenv("REDIS_ADDR", "localhost:6379"),
		Password: config.Getenv("REDIS_PASSWORD", ""),
		DB:       config.GetenvInt("REDIS_DB", 0),
	}, config.DB)
	if err != nil {
		log.Fatalf("failed to initialise storage: %v", err)
	}

	publisher, err := event.NewPublisher(config.Getenv("AMQP_URL", ""), config.Getenv("AMQP_EXCHANGE", "mastery.events"))
	if err != nil {
		log.Fatalf("failed to initialise event publisher: %v", err)
	}

	remote, err := user.NewRemoteSync(ctx, config.Getenv("MONGO_URI", ""), config.Getenv("MONGO_DATABASE", "neet_mastery"))
	if err != nil {
		// remote sync is best effort; the portal works without it
		config.Logger.WithError(err).Warn("Remote user sync unavailable")
		remote, _ = user.NewRemoteSync(ctx, "", "")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.Getenv("GEMINI_API_KEY", ""),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("failed to create Gemini client: %v", err)
	}
	textModel := config.Getenv("GEMINI_TEXT_MODEL", defaultTextModel)
	liveModel := config.Getenv("GEMINI_LIVE_MODEL", defaultLiveModel)

	cookies := auth.NewHandler(config.Getenv("COOKIE_DOMAIN", ""))
	userContainer := user.NewUserContainer(storeContainer.Local, remote, publisher, cookies, config.GetenvList("AUTHOR_CONTACTS"))
	chapterContainer := chapter.NewChapterContainer(userContainer.Service)
	aiQuizContainer := aiquiz.NewAIQuizContainer(genaiClient, textModel, chapterContainer.Service)
	examContainer := exam.NewExamContainer(storeContainer.Local)

	masteryContainer := mastery.NewMasteryContainer(
		chapterContainer.Service,
		userContainer.Service,
		aiQuizContainer.Service,
		examContainer.Service,
		publisher,
	)

	modes := companion.NewModeStore(storeContainer.Local)
	chatContainer := chat.NewChatContainer(genaiClient, textModel, modes)
	voiceContainer := voice.NewVoiceContainer(genaiClient, liveModel, modes, config.GetenvList("CORS_ORIGINS"))

	return &Container{
		StoreContainer:   storeContainer,
		UserContainer:    userContainer,
		ChapterContainer: chapterContainer,
		AIQuizContainer:  aiQuizContainer,
		ExamContainer:    examContainer,
		MasteryContainer: masteryContainer,
		PlanHandler:      plan.NewHandler(plan.NewService(userContainer.Service)),
		CompanionHandler: companion.NewHandler(modes),
		ChatContainer:    chatContainer,
		VoiceContainer:   voiceContainer,
		Publisher:        publisher,
		RemoteSync:       remote,
	}
}

func (c *Container) Router() router.RouterConfig {
	return router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		ChapterHandler:   c.ChapterContainer.Handler,
		AIQuizHandler:    c.AIQuizContainer.Handler,
		MasteryHandler:   c.MasteryContainer.Handler,
		ExamHandler:      c.ExamContainer.Handler,
		PlanHandler:      c.PlanHandler,
		CompanionHandler: c.CompanionHandler,
		ChatHandler:      c.ChatContainer.Handler,
		VoiceHandler:     c.VoiceContainer.Handler,
	}
}

// Close releases broker and document-store connections.
func (c *Container) Close(ctx context.Context) {
	if err := c.Publisher.Close(); err != nil {
		config.Logger.WithError(err).Warn("Closing event publisher failed")
	}
	if err := c.RemoteSync.Close(ctx); err != nil {
		config.Logger.WithError(err).Warn("Closing remote sync failed")
	}
}
