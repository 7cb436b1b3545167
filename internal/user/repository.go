package user

import (
	"context"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/store"
)

type UserRepository interface {
	Save(ctx context.Context, p *Profile)
	Get(ctx context.Context, id string) (*Profile, bool)
	Delete(ctx context.Context, id string)
	Theme(ctx context.Context, id string) Theme
	SetTheme(ctx context.Context, id string, t Theme)
}

type userRepository struct {
	local *store.Local
}

func NewRepository(local *store.Local) UserRepository {
	return &userRepository{local: local}
}

// storedProfile is the at-rest form. Contact fields are encrypted when a key is configured.
type storedProfile struct {
	Profile
	Encrypted bool `json:"encrypted,omitempty"`
}

func (r *userRepository) Save(ctx context.Context, p *Profile) {
	rec := storedProfile{Profile: *p}

	if config.CryptoEnabled() {
		phone, errPhone := encryptOptional(p.Phone)
		email, errEmail := encryptOptional(p.Email)
		if errPhone != nil || errEmail != nil {
			config.WithContext(ctx).Warn("Contact encryption failed, profile not persisted")
			return
		}
		rec.Phone, rec.Email, rec.Encrypted = phone, email, true
	}

	r.local.SetJSON(ctx, store.UserKey(store.KeyUser, p.ID), rec)
}

func (r *userRepository) Get(ctx context.Context, id string) (*Profile, bool) {
	var rec storedProfile
	if !r.local.GetJSON(ctx, store.UserKey(store.KeyUser, id), &rec) {
		return nil, false
	}

	p := rec.Profile
	if rec.Encrypted {
		phone, errPhone := decryptOptional(p.Phone)
		email, errEmail := decryptOptional(p.Email)
		if errPhone != nil || errEmail != nil {
			config.WithContext(ctx).Warnf("Discarding unreadable profile for user %s", id)
			return nil, false
		}
		p.Phone, p.Email = phone, email
	}
	return &p, true
}

func (r *userRepository) Delete(ctx context.Context, id string) {
	r.local.Remove(ctx, store.UserKey(store.KeyUser, id))
}

// Theme is light unless dark was explicitly saved.
func (r *userRepository) Theme(ctx context.Context, id string) Theme {
	var t Theme
	if r.local.GetJSON(ctx, store.UserKey(store.KeyTheme, id), &t) && t == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (r *userRepository) SetTheme(ctx context.Context, id string, t Theme) {
	r.local.SetJSON(ctx, store.UserKey(store.KeyTheme, id), t)
}

func encryptOptional(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return config.Encrypt(s)
}

func decryptOptional(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return config.Decrypt(s)
}
