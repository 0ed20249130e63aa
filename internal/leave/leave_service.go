package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/abangiyan/hongwei-crew-manager/internal/events"
	leaveerrors "github.com/abangiyan/hongwei-crew-manager/internal/leave/errors"
	"github.com/abangiyan/hongwei-crew-manager/internal/messaging/kafka"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Decide(ctx context.Context, reviewerID, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Create memeriksa aturan keras lebih dulu (hari kerja, satu per pekan),
// lalu bentrok jadwal sebagai soft conflict yang butuh konfirmasi.
// Urutan penting: error keras tidak boleh tertutup oleh permintaan konfirmasi.
func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_date", req.LeaveDate),
	)

	leaveDate, err := time.Parse("2006-01-02", req.LeaveDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveDate
	}

	if !IsWeekday(leaveDate) {
		s.logger.Warn("create leave rejected, weekend date",
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_date", req.LeaveDate),
		)
		return LeaveResponse{}, leaveerrors.ErrWeekendLeave
	}

	monday, sunday := WeekWindow(leaveDate)
	existing, err := s.repo.CountInWeek(ctx, req.EmployeeID, monday, sunday)
	if err != nil {
		s.logger.Error("create leave week check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if existing > 0 {
		return LeaveResponse{}, leaveerrors.ErrWeekAlreadyTaken
	}

	scheduled, err := s.repo.CountSchedulesOnDate(ctx, req.EmployeeID, leaveDate)
	if err != nil {
		s.logger.Error("create leave schedule check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if scheduled > 0 && !req.Confirmed {
		s.logger.Info("create leave needs confirmation",
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_date", req.LeaveDate),
			zap.Int64("schedule_count", scheduled),
		)
		return LeaveResponse{}, leaveerrors.ErrScheduleConflict
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		LeaveDate:  leaveDate,
		ISOWeek:    ISOWeekKey(leaveDate),
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.LeaveRequestedEvent{
			EventType:  "leave_requested",
			LeaveID:    row.ID.String(),
			EmployeeID: req.EmployeeID,
			LeaveDate:  req.LeaveDate,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.NewPendingEvent(
			uuid.NewString(), rid,
			"leave_request", row.ID.String(),
			event.EventType, events.LeaveRequestedTopic,
			payload,
		)); err != nil {
			s.logger.Error("create leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", row.ID.String()),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// Decide idempoten: memutuskan ulang ke status yang sama adalah no-op.
// Selain itu hanya pending yang boleh berubah.
func (s *service) Decide(ctx context.Context, reviewerID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if row.Status == req.Status {
		return mapToResponse(*row), nil
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	now := time.Now().UTC()
	row.Status = req.Status
	row.DecidedAt = &now
	if reviewer, err := uuid.Parse(reviewerID); err == nil {
		row.DecidedBy = &reviewer
	}

	if err := qtx.UpdateDecision(ctx, row); err != nil {
		s.logger.Error("decide leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete leave success", zap.String("leave_id", id))
	return nil
}

func mapToResponse(row LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		LeaveDate:  row.LeaveDate.Format("2006-01-02"),
		ISOWeek:    row.ISOWeek,
		Reason:     row.Reason,
		Status:     row.Status,
	}
	if row.DecidedBy != nil {
		resp.DecidedBy = row.DecidedBy.String()
	}
	if row.DecidedAt != nil {
		resp.DecidedAt = row.DecidedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(rows []LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
