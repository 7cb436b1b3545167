package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key       string         `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string { return "kv_entries" }

type sqlKV struct {
	db *gorm.DB
}

// NewSQLKV migrates the kv_entries table and returns a KV backed by it.
func NewSQLKV(db *gorm.DB) (KV, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &sqlKV{db: db}, nil
}

func (s *sqlKV) Get(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	if err := s.db.WithContext(ctx).First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(e.Value), nil
}

func (s *sqlKV) Set(ctx context.Context, key string, value []byte) error {
	e := Entry{Key: key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *sqlKV) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}
