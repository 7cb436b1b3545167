package exam

import "github.com/neet-mastery/mastery-lambda/internal/store"

type ExamContainer struct {
	Handler *Handler
	Service ExamService
}

func NewExamContainer(local *store.Local) *ExamContainer {
	repo := NewRepository(local)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ExamContainer{
		Handler: handler,
		Service: service,
	}
}
