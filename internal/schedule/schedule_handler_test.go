package schedule_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"
	"github.com/abangiyan/hongwei-crew-manager/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeScheduleService struct {
	createBatchFn  func(ctx context.Context, userID string, req schedule.CreateBatchRequest) (schedule.BatchResponse, error)
	createFn       func(ctx context.Context, userID string, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error)
	getAllFn       func(ctx context.Context, filter schedule.ListFilter) ([]schedule.ScheduleResponse, error)
	getByIDFn      func(ctx context.Context, id string) (schedule.ScheduleResponse, error)
	updateStatusFn func(ctx context.Context, id string, req schedule.UpdateStatusRequest) (schedule.ScheduleResponse, error)
	deleteFn       func(ctx context.Context, id string) error
	draftSubmitFn  func(ctx context.Context, userID string) (schedule.BatchResponse, error)
}

func (f *fakeScheduleService) CreateBatch(ctx context.Context, userID string, req schedule.CreateBatchRequest) (schedule.BatchResponse, error) {
	return f.createBatchFn(ctx, userID, req)
}
func (f *fakeScheduleService) Create(ctx context.Context, userID string, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	return f.createFn(ctx, userID, req)
}
func (f *fakeScheduleService) GetAll(ctx context.Context, filter schedule.ListFilter) ([]schedule.ScheduleResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeScheduleService) GetByID(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeScheduleService) UpdateStatus(ctx context.Context, id string, req schedule.UpdateStatusRequest) (schedule.ScheduleResponse, error) {
	return f.updateStatusFn(ctx, id, req)
}
func (f *fakeScheduleService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeScheduleService) GetDraft(ctx context.Context, userID string) (*schedule.Wizard, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeScheduleService) DraftSetBranch(ctx context.Context, userID string, req schedule.DraftBranchRequest) (*schedule.Wizard, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeScheduleService) DraftSetShift1(ctx context.Context, userID string, sel schedule.ShiftSelection) (*schedule.Wizard, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeScheduleService) DraftSetShift2(ctx context.Context, userID string, sel schedule.ShiftSelection) (*schedule.Wizard, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeScheduleService) DraftBack(ctx context.Context, userID string) (*schedule.Wizard, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeScheduleService) DraftSubmit(ctx context.Context, userID string) (schedule.BatchResponse, error) {
	return f.draftSubmitFn(ctx, userID)
}
func (f *fakeScheduleService) DiscardDraft(ctx context.Context, userID string) error {
	return errors.New("not implemented")
}

// newBatchRouter memasang rantai middleware yang sama dengan routes aslinya
// untuk endpoint idempoten, dengan user yang sudah terautentikasi.
func newBatchRouter(svc schedule.Service, rdb *redis.Client, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := schedule.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	setUser := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
	r.POST("/schedules/batch", setUser, middleware.ExtractUserID(), middleware.Idempotency(rdb), h.CreateBatch)
	r.POST("/schedules/draft/submit", setUser, middleware.ExtractUserID(), middleware.Idempotency(rdb), h.DraftSubmit)
	return r
}

func postJSON(r *gin.Engine, path, body, idempotencyKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestScheduleHandler_CreateBatchIdempotency(t *testing.T) {
	userID := uuid.New().String()
	body := `{"branch_id":"` + uuid.New().String() + `","schedule_date":"2024-06-10"}`

	t.Run("retry dengan key yang sama dijawab dari cache", func(t *testing.T) {
		batchResp := schedule.BatchResponse{
			BatchRef:      "SCH-000042",
			RowCount:      2,
			OvertimeCount: 1,
		}
		payload, err := json.Marshal(batchResp)
		require.NoError(t, err)

		cacheKey := "idemp:/schedules/batch:" + userID + ":key-1"
		lockKey := cacheKey + ":lock"

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		calls := 0
		svc := &fakeScheduleService{
			createBatchFn: func(ctx context.Context, uid string, req schedule.CreateBatchRequest) (schedule.BatchResponse, error) {
				calls++
				assert.Equal(t, userID, uid)
				return batchResp, nil
			},
		}
		r := newBatchRouter(svc, rdb, userID)

		w1 := postJSON(r, "/schedules/batch", body, "key-1")
		assert.Equal(t, http.StatusCreated, w1.Code)
		env1 := decodeEnvelope(t, w1.Body.Bytes())
		assert.True(t, env1.Ok)

		// retry setelah proses pertama selesai, batch tidak ditulis dua kali
		w2 := postJSON(r, "/schedules/batch", body, "key-1")
		assert.Equal(t, http.StatusOK, w2.Code)
		env2 := decodeEnvelope(t, w2.Body.Bytes())
		assert.True(t, env2.Ok)

		var cached schedule.BatchResponse
		assert.NoError(t, json.Unmarshal(env2.Data, &cached))
		assert.Equal(t, "SCH-000042", cached.BatchRef)
		assert.Equal(t, 2, cached.RowCount)

		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gagal proses tetap melepas lock tanpa mengisi cache", func(t *testing.T) {
		cacheKey := "idemp:/schedules/batch:" + userID + ":key-2"
		lockKey := cacheKey + ":lock"

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		svc := &fakeScheduleService{
			createBatchFn: func(ctx context.Context, uid string, req schedule.CreateBatchRequest) (schedule.BatchResponse, error) {
				return schedule.BatchResponse{}, errors.New("pq: connection refused")
			},
		}
		r := newBatchRouter(svc, rdb, userID)

		w := postJSON(r, "/schedules/batch", body, "key-2")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tanpa Idempotency-Key tidak menyentuh redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		calls := 0
		svc := &fakeScheduleService{
			createBatchFn: func(ctx context.Context, uid string, req schedule.CreateBatchRequest) (schedule.BatchResponse, error) {
				calls++
				return schedule.BatchResponse{BatchRef: "SCH-000043", RowCount: 1}, nil
			},
		}
		r := newBatchRouter(svc, rdb, userID)

		w := postJSON(r, "/schedules/batch", body, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScheduleHandler_DraftSubmitIdempotency(t *testing.T) {
	userID := uuid.New().String()

	t.Run("submit sukses mengisi cache dan melepas lock", func(t *testing.T) {
		batchResp := schedule.BatchResponse{BatchRef: "SCH-000044", RowCount: 3}
		payload, err := json.Marshal(batchResp)
		require.NoError(t, err)

		cacheKey := "idemp:/schedules/draft/submit:" + userID + ":key-3"
		lockKey := cacheKey + ":lock"

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		calls := 0
		svc := &fakeScheduleService{
			draftSubmitFn: func(ctx context.Context, uid string) (schedule.BatchResponse, error) {
				calls++
				assert.Equal(t, userID, uid)
				return batchResp, nil
			},
		}
		r := newBatchRouter(svc, rdb, userID)

		w1 := postJSON(r, "/schedules/draft/submit", `{}`, "key-3")
		assert.Equal(t, http.StatusCreated, w1.Code)

		w2 := postJSON(r, "/schedules/draft/submit", `{}`, "key-3")
		assert.Equal(t, http.StatusOK, w2.Code)
		env := decodeEnvelope(t, w2.Body.Bytes())
		assert.True(t, env.Ok)

		var cached schedule.BatchResponse
		assert.NoError(t, json.Unmarshal(env.Data, &cached))
		assert.Equal(t, "SCH-000044", cached.BatchRef)

		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
