package exam

import (
	"context"
	"sync"

	"github.com/neet-mastery/mastery-lambda/internal/store"
)

type ExamRepository interface {
	Append(ctx context.Context, userID string, rec ExamRecord) error
	ListByUser(ctx context.Context, userID string) []ExamRecord
}

type examRepository struct {
	mu    sync.Mutex
	local *store.Local
}

func NewRepository(local *store.Local) ExamRepository {
	return &examRepository{local: local}
}

// Append adds rec to the user's history. When the stored history cannot be read the write
// is skipped: rewriting the key from an empty list would drop every earlier record.
func (r *examRepository) Append(ctx context.Context, userID string, rec ExamRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := store.UserKey(store.KeyExams, userID)
	var records []ExamRecord
	if _, err := r.local.Lookup(ctx, key, &records); err != nil {
		return err
	}
	records = append(records, rec)
	r.local.SetJSON(ctx, key, records)
	return nil
}

func (r *examRepository) ListByUser(ctx context.Context, userID string) []ExamRecord {
	var records []ExamRecord
	if !r.local.GetJSON(ctx, store.UserKey(store.KeyExams, userID), &records) {
		return []ExamRecord{}
	}
	return records
}
