package schedule

import (
	"context"
	"encoding/json"
	"testing"

	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRedisDraftStore_SaveAndLoad(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisDraftStore(rdb)
	ctx := context.Background()
	userID := uuid.New().String()

	w := NewWizard()
	assert.NoError(t, w.SetBranch(uuid.New().String(), "2024-06-10", ""))

	payload, err := json.Marshal(w)
	assert.NoError(t, err)

	mock.ExpectSet(GetDraftKey(userID), payload, draftTTL).SetVal("OK")
	assert.NoError(t, store.Save(ctx, userID, w))

	mock.ExpectGet(GetDraftKey(userID)).SetVal(string(payload))
	loaded, err := store.Load(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, w.Step, loaded.Step)
	assert.Equal(t, w.BranchID, loaded.BranchID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisDraftStore_LoadMissing(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisDraftStore(rdb)
	userID := uuid.New().String()

	mock.ExpectGet(GetDraftKey(userID)).RedisNil()

	_, err := store.Load(context.Background(), userID)
	assert.ErrorIs(t, err, scheduleerrors.ErrDraftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisDraftStore_Delete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisDraftStore(rdb)
	userID := uuid.New().String()

	mock.ExpectDel(GetDraftKey(userID)).SetVal(1)

	assert.NoError(t, store.Delete(context.Background(), userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
