package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/neet-mastery/mastery-lambda/internal/config"
)

// Local wraps a KV so that storage problems never reach the caller: reads degrade to
// "absent" and writes to no-ops, with a warning logged.
type Local struct {
	kv KV
}

func NewLocal(kv KV) *Local {
	return &Local{kv: kv}
}

// GetJSON decodes the value at key into v. It reports false when the key is absent,
// unreadable or not valid JSON.
func (l *Local) GetJSON(ctx context.Context, key string, v any) bool {
	raw, err := l.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			config.WithContext(ctx).WithError(err).Warnf("Storage access denied for key: %s", key)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Discarding unreadable value for key: %s", key)
		return false
	}
	return true
}

// Lookup is GetJSON for read-modify-write callers. A missing key is (false, nil); a failed
// read or an undecodable value is an error, so the caller never mistakes it for "empty".
func (l *Local) Lookup(ctx context.Context, key string, v any) (bool, error) {
	raw, err := l.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (l *Local) SetJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Storage encode failed for key: %s", key)
		return
	}
	if err := l.kv.Set(ctx, key, raw); err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Storage set failed for key: %s", key)
	}
}

func (l *Local) Remove(ctx context.Context, key string) {
	if err := l.kv.Delete(ctx, key); err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Storage remove failed for key: %s", key)
	}
}
