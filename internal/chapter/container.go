package chapter

type ChapterContainer struct {
	Handler *Handler
	Service Service
}

func NewChapterContainer(subscriptions SubscriptionChecker) *ChapterContainer {
	service := NewService()
	handler := NewHandler(service, subscriptions)

	return &ChapterContainer{
		Handler: handler,
		Service: service,
	}
}
