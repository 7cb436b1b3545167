// Package store is the key-value persistence behind profiles, theme and mode settings and
// exam history. Values are JSON documents stored under string keys.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

const (
	KeyUser     = "neet_mastery_user"
	KeyExams    = "neet_mastery_exams"
	KeySettings = "neet_mastery_settings"
	KeyTheme    = "neet_mastery_theme"
)

// UserKey scopes one of the Key* prefixes to a single user.
func UserKey(prefix, userID string) string {
	return prefix + ":" + userID
}
