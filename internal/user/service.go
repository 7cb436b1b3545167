package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/event"
)

var (
	ErrInvalidLogin = errors.New("name, auth method and identifier are required")
	ErrUserNotFound = errors.New("user not found")
)

// DefaultAuthorContacts are the identifiers that get a subscription on login.
var DefaultAuthorContacts = []string{"7233893011", "7738483538", "raiadarsh3848@gmail.com"}

type UserService interface {
	Login(ctx context.Context, req LoginRequest) (*Profile, error)
	Me(ctx context.Context, id string) (*Profile, error)
	Logout(ctx context.Context, id string)
	Theme(ctx context.Context, id string) Theme
	SetTheme(ctx context.Context, id string, t Theme)
	MarkSubscribed(ctx context.Context, id string) (*Profile, error)
	IsSubscribed(ctx context.Context, id string) bool
}

type userService struct {
	repo      UserRepository
	remote    RemoteSync
	publisher event.Publisher
	authors   map[string]struct{}
	now       func() time.Time
}

func NewService(repo UserRepository, remote RemoteSync, publisher event.Publisher, authorContacts []string) UserService {
	if len(authorContacts) == 0 {
		authorContacts = DefaultAuthorContacts
	}
	authors := make(map[string]struct{}, len(authorContacts))
	for _, c := range authorContacts {
		authors[strings.TrimSpace(c)] = struct{}{}
	}

	return &userService{
		repo:      repo,
		remote:    remote,
		publisher: publisher,
		authors:   authors,
		now:       time.Now,
	}
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*Profile, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(req.Name)
	identifier := strings.TrimSpace(req.Identifier)
	if name == "" || identifier == "" || !req.AuthMethod.IsValid() {
		return nil, ErrInvalidLogin
	}

	_, isAuthor := s.authors[identifier]
	p := &Profile{
		ID:           uuid.NewString(),
		Name:         name,
		AuthMethod:   req.AuthMethod,
		IsSubscribed: isAuthor,
		JoinedAt:     s.now().UTC().Format(time.RFC3339Nano),
	}
	if req.AuthMethod == AuthMethodPhone {
		p.Phone = identifier
	} else {
		p.Email = identifier
	}

	s.repo.Save(ctx, p)
	s.sync(ctx, p)
	s.publish(ctx, event.TypeUserLoggedIn, p)

	log.WithField("user_id", p.ID).Infof("User logged in via %s", p.AuthMethod)
	return p, nil
}

func (s *userService) Me(ctx context.Context, id string) (*Profile, error) {
	p, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return p, nil
}

func (s *userService) Logout(ctx context.Context, id string) {
	s.repo.Delete(ctx, id)
	config.WithContext(ctx).WithField("user_id", id).Info("User logged out")
}

func (s *userService) Theme(ctx context.Context, id string) Theme {
	return s.repo.Theme(ctx, id)
}

func (s *userService) SetTheme(ctx context.Context, id string, t Theme) {
	s.repo.SetTheme(ctx, id, t)
}

func (s *userService) MarkSubscribed(ctx context.Context, id string) (*Profile, error) {
	p, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, ErrUserNotFound
	}
	if p.IsSubscribed {
		return p, nil
	}

	p.IsSubscribed = true
	s.repo.Save(ctx, p)
	s.sync(ctx, p)
	s.publish(ctx, event.TypeUserSubscribed, p)
	return p, nil
}

func (s *userService) IsSubscribed(ctx context.Context, id string) bool {
	p, ok := s.repo.Get(ctx, id)
	return ok && p.IsSubscribed
}

// sync never fails the caller; the local profile is the source of truth.
func (s *userService) sync(ctx context.Context, p *Profile) {
	if err := s.remote.SyncUser(ctx, p); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Remote user sync failed")
	}
}

func (s *userService) publish(ctx context.Context, t event.Type, p *Profile) {
	e := event.New(t, p.ID, map[string]any{
		"auth_method":   string(p.AuthMethod),
		"is_subscribed": p.IsSubscribed,
	})
	if err := s.publisher.Publish(ctx, e); err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Failed to publish %s", t)
	}
}
