package companion

import (
	"context"

	"github.com/neet-mastery/mastery-lambda/internal/store"
)

type settings struct {
	Mode BehaviorMode `json:"behaviorMode"`
}

// ModeStore persists the active behaviour mode per user.
type ModeStore interface {
	Mode(ctx context.Context, userID string) BehaviorMode
	SetMode(ctx context.Context, userID string, mode BehaviorMode)
}

type modeStore struct {
	local *store.Local
}

func NewModeStore(local *store.Local) ModeStore {
	return &modeStore{local: local}
}

func (s *modeStore) Mode(ctx context.Context, userID string) BehaviorMode {
	var st settings
	if !s.local.GetJSON(ctx, store.UserKey(store.KeySettings, userID), &st) || !st.Mode.IsValid() {
		return DefaultMode
	}
	return st.Mode
}

func (s *modeStore) SetMode(ctx context.Context, userID string, mode BehaviorMode) {
	s.local.SetJSON(ctx, store.UserKey(store.KeySettings, userID), settings{Mode: mode})
}
