package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abangiyan/hongwei-crew-manager/internal/leave"
	leaveerrors "github.com/abangiyan/hongwei-crew-manager/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

type fakeLeaveService struct {
	createFn  func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, id string) (leave.LeaveResponse, error)
	decideFn  func(ctx context.Context, reviewerID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeLeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveService) Decide(ctx context.Context, reviewerID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, reviewerID, id, req)
}
func (f *fakeLeaveService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, employeeID, req.EmployeeID)
				assert.Equal(t, "2026-03-10", req.LeaveDate)
				return leave.LeaveResponse{
					ID:         uuid.New().String(),
					EmployeeID: req.EmployeeID,
					LeaveDate:  req.LeaveDate,
					ISOWeek:    "2026-W11",
					Status:     leave.StatusPending,
				}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + employeeID + `","leave_date":"2026-03-10","reason":"acara keluarga"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got.EmployeeID)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("staff can only request for themselves", func(t *testing.T) {
		ownID := uuid.New().String()
		otherID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, ownID, req.EmployeeID)
				return leave.LeaveResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, Status: leave.StatusPending}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + otherID + `","leave_date":"2026-03-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("role", "staff")
		c.Set("employee_id", ownID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative schedule conflict asks for confirmation", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrScheduleConflict
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","leave_date":"2026-03-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "NEEDS_CONFIRMATION", env.Error.Code)
	})

	t.Run("negative weekend date", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrWeekendLeave
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","leave_date":"2026-03-14"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative service error is not leaked", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, errors.New("pq: connection refused")
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","leave_date":"2026-03-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "pq:")
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	t.Run("staff filter is forced to own employee id", func(t *testing.T) {
		ownID := uuid.New().String()

		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
				assert.Equal(t, ownID, filter.EmployeeID)
				return []leave.LeaveResponse{{ID: uuid.New().String(), EmployeeID: ownID, Status: leave.StatusPending}}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?employee_id="+uuid.New().String(), nil)
		c.Set("role", "staff")
		c.Set("employee_id", ownID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("manager can filter freely", func(t *testing.T) {
		wantID := uuid.New().String()
		svc := &fakeLeaveService{
			getAllFn: func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
				assert.Equal(t, wantID, filter.EmployeeID)
				assert.Equal(t, leave.StatusApproved, filter.Status)
				return nil, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?employee_id="+wantID+"&status=approved", nil)
		c.Set("role", "manager")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Decide(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reviewerID := uuid.New().String()
		leaveID := uuid.New().String()

		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, rid, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, reviewerID, rid)
				assert.Equal(t, leaveID, id)
				assert.Equal(t, leave.StatusApproved, req.Status)
				return leave.LeaveResponse{ID: id, Status: req.Status, DecidedBy: rid}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+leaveID+"/decision", strings.NewReader(`{"status":"approved"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: leaveID}}
		c.Set("user_id", reviewerID)

		h.Decide(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, got.Status)
		assert.Equal(t, reviewerID, got.DecidedBy)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/123/decision", strings.NewReader(`{"status":"maybe"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative already rejected", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, rid, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidDecision
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+uuid.New().String()+"/decision", strings.NewReader(`{"status":"approved"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: uuid.New().String()}}

		h.Decide(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestLeaveHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		leaveID := uuid.New().String()
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, leaveID, id)
				return nil
			},
		}

		h := leave.NewHandler(svc)
		r := gin.New()
		r.DELETE("/leaves/:id", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/leaves/"+leaveID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, id string) error {
				return leaveerrors.ErrLeaveNotFound
			},
		}

		h := leave.NewHandler(svc)
		r := gin.New()
		r.DELETE("/leaves/:id", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/leaves/"+uuid.New().String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
