package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"

	"github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix = "schedule:draft:"
	draftTTL       = 24 * time.Hour
)

func GetDraftKey(userID string) string {
	return draftKeyPrefix + userID
}

//go:generate mockgen -source=draft_store.go -destination=mock/draft_store_mock.go -package=mock
type DraftStore interface {
	Save(ctx context.Context, userID string, w *Wizard) error
	Load(ctx context.Context, userID string) (*Wizard, error)
	Delete(ctx context.Context, userID string) error
}

// redisDraftStore menyimpan wizard per user di Redis dengan TTL, jadi
// draft yang ditinggalkan hilang sendiri tanpa pembersihan terjadwal.
type redisDraftStore struct {
	rdb *redis.Client
}

func NewRedisDraftStore(rdb *redis.Client) DraftStore {
	return &redisDraftStore{rdb: rdb}
}

func (s *redisDraftStore) Save(ctx context.Context, userID string, w *Wizard) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, GetDraftKey(userID), payload, draftTTL).Err()
}

func (s *redisDraftStore) Load(ctx context.Context, userID string) (*Wizard, error) {
	raw, err := s.rdb.Get(ctx, GetDraftKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, scheduleerrors.ErrDraftNotFound
		}
		return nil, err
	}

	var w Wizard
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *redisDraftStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, GetDraftKey(userID)).Err()
}
