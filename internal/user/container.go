package user

import (
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/event"
	"github.com/neet-mastery/mastery-lambda/internal/store"
)

type UserContainer struct {
	Handler *Handler
	Service UserService
}

func NewUserContainer(local *store.Local, remote RemoteSync, publisher event.Publisher, cookies *auth.Handler, authorContacts []string) *UserContainer {
	repo := NewRepository(local)
	service := NewService(repo, remote, publisher, authorContacts)
	handler := NewHandler(service, cookies)

	return &UserContainer{
		Handler: handler,
		Service: service,
	}
}
