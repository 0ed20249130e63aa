package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

	leaveerrors "github.com/abangiyan/hongwei-crew-manager/internal/leave/errors"
	"github.com/abangiyan/hongwei-crew-manager/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn               func(tx *sql.Tx) Repository
	createFn               func(ctx context.Context, req *LeaveRequest) error
	findAllFn              func(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	findByIDFn             func(ctx context.Context, id string) (*LeaveRequest, error)
	countInWeekFn          func(ctx context.Context, employeeID string, monday, sunday time.Time) (int64, error)
	countSchedulesOnDateFn func(ctx context.Context, employeeID string, date time.Time) (int64, error)
	updateDecisionFn       func(ctx context.Context, req *LeaveRequest) error
	deleteFn               func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, req *LeaveRequest) error {
	return f.createFn(ctx, req)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) CountInWeek(ctx context.Context, employeeID string, monday, sunday time.Time) (int64, error) {
	return f.countInWeekFn(ctx, employeeID, monday, sunday)
}
func (f *fakeRepo) CountSchedulesOnDate(ctx context.Context, employeeID string, date time.Time) (int64, error) {
	return f.countSchedulesOnDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) UpdateDecision(ctx context.Context, req *LeaveRequest) error {
	return f.updateDecisionFn(ctx, req)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func newCleanRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.countInWeekFn = func(ctx context.Context, employeeID string, monday, sunday time.Time) (int64, error) {
		return 0, nil
	}
	repo.countSchedulesOnDateFn = func(ctx context.Context, employeeID string, date time.Time) (int64, error) {
		return 0, nil
	}
	return repo
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		var saved LeaveRequest
		repo := newCleanRepo()
		repo.createFn = func(ctx context.Context, req *LeaveRequest) error {
			saved = *req
			return nil
		}

		outbox := &fakeOutbox{}
		svc := NewService(db, repo, outbox)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(ctx, CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveDate:  "2024-06-11", // Selasa
			Reason:     "keperluan keluarga",
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusPending, resp.Status)
		assert.Equal(t, "2024-06-11", resp.LeaveDate)
		assert.Equal(t, "2024-W24", resp.ISOWeek)
		assert.Equal(t, employeeID, saved.EmployeeID.String())
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, "leave_requested", outbox.created[0].EventType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative - saturday rejected before any write", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newCleanRepo()
		repo.createFn = func(ctx context.Context, req *LeaveRequest) error {
			t.Fatal("weekend request must not be persisted")
			return nil
		}

		svc := NewService(db, repo, nil)

		_, err := svc.Create(ctx, CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveDate:  "2024-06-15", // Sabtu
		})

		assert.ErrorIs(t, err, leaveerrors.ErrWeekendLeave)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative - second request in same iso week rejected", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newCleanRepo()
		repo.countInWeekFn = func(ctx context.Context, emplID string, monday, sunday time.Time) (int64, error) {
			assert.Equal(t, employeeID, emplID)
			assert.Equal(t, "2024-06-10", monday.Format("2006-01-02"))
			assert.Equal(t, "2024-06-16", sunday.Format("2006-01-02"))
			return 1, nil
		}
		repo.createFn = func(ctx context.Context, req *LeaveRequest) error {
			t.Fatal("duplicate week request must not be persisted")
			return nil
		}

		svc := NewService(db, repo, nil)

		_, err := svc.Create(ctx, CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveDate:  "2024-06-13", // Kamis, sepekan dengan Selasa 2024-06-11
		})

		assert.ErrorIs(t, err, leaveerrors.ErrWeekAlreadyTaken)
	})

	t.Run("soft conflict - schedule on date needs confirmation", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newCleanRepo()
		repo.countSchedulesOnDateFn = func(ctx context.Context, emplID string, date time.Time) (int64, error) {
			return 2, nil
		}
		repo.createFn = func(ctx context.Context, req *LeaveRequest) error { return nil }

		svc := NewService(db, repo, nil)

		// Tanpa konfirmasi, ditahan.
		_, err := svc.Create(ctx, CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveDate:  "2024-06-11",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrScheduleConflict)

		// Dengan konfirmasi eksplisit, jalan terus.
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(ctx, CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveDate:  "2024-06-11",
			Confirmed:  true,
		})
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative - invalid date format", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := NewService(db, newCleanRepo(), nil)

		_, err := svc.Create(ctx, CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveDate:  "11 Juni 2024",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveDate)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	reviewerID := uuid.New().String()
	id := uuid.New()

	newDecideRepo := func(current string) *fakeRepo {
		repo := newCleanRepo()
		repo.findByIDFn = func(ctx context.Context, rowID string) (*LeaveRequest, error) {
			return &LeaveRequest{ID: id, EmployeeID: uuid.New(), LeaveDate: time.Now(), Status: current}, nil
		}
		repo.updateDecisionFn = func(ctx context.Context, req *LeaveRequest) error { return nil }
		return repo
	}

	t.Run("success - pending to approved", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		svc := NewService(db, newDecideRepo(StatusPending), nil)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Decide(ctx, reviewerID, id.String(), DecideLeaveRequest{Status: StatusApproved})
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, resp.Status)
		assert.Equal(t, reviewerID, resp.DecidedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - re-approving approved is a no-op", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newDecideRepo(StatusApproved)
		repo.updateDecisionFn = func(ctx context.Context, req *LeaveRequest) error {
			t.Fatal("no-op must not write")
			return nil
		}

		svc := NewService(db, repo, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()

		resp, err := svc.Decide(ctx, reviewerID, id.String(), DecideLeaveRequest{Status: StatusApproved})
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, resp.Status)
	})

	t.Run("negative - rejected cannot become approved", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		svc := NewService(db, newDecideRepo(StatusRejected), nil)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Decide(ctx, reviewerID, id.String(), DecideLeaveRequest{Status: StatusApproved})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
	})
}
