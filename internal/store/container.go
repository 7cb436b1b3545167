package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Container struct {
	KV    KV
	Local *Local
}

// NewContainer picks the KV backend named by KV_BACKEND. db is only needed for "sql".
func NewContainer(ctx context.Context, backend string, redisCfg RedisConfig, db *gorm.DB) (*Container, error) {
	var (
		kv  KV
		err error
	)
	switch backend {
	case "", "memory":
		kv = NewMemoryKV()
	case "redis":
		kv, err = NewRedisKV(ctx, redisCfg)
	case "sql":
		if db == nil {
			return nil, fmt.Errorf("KV_BACKEND=sql requires a database connection")
		}
		kv, err = NewSQLKV(db)
	default:
		return nil, fmt.Errorf("unsupported KV_BACKEND %q", backend)
	}
	if err != nil {
		return nil, err
	}

	return &Container{KV: kv, Local: NewLocal(kv)}, nil
}
