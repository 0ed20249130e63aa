package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abangiyan/hongwei-crew-manager/internal/events"
	"github.com/abangiyan/hongwei-crew-manager/internal/messaging/kafka"
	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/contextutil"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/counter"
	"github.com/abangiyan/hongwei-crew-manager/internal/shift"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	CreateBatch(ctx context.Context, userID string, req CreateBatchRequest) (BatchResponse, error)
	Create(ctx context.Context, userID string, req CreateScheduleRequest) (ScheduleResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (ScheduleResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	GetDraft(ctx context.Context, userID string) (*Wizard, error)
	DraftSetBranch(ctx context.Context, userID string, req DraftBranchRequest) (*Wizard, error)
	DraftSetShift1(ctx context.Context, userID string, sel ShiftSelection) (*Wizard, error)
	DraftSetShift2(ctx context.Context, userID string, sel ShiftSelection) (*Wizard, error)
	DraftBack(ctx context.Context, userID string) (*Wizard, error)
	DraftSubmit(ctx context.Context, userID string) (BatchResponse, error)
	DiscardDraft(ctx context.Context, userID string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	drafts  DraftStore
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	drafts DraftStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		drafts:  drafts,
		logger:  l,
	}
}

func (s *service) CreateBatch(ctx context.Context, userID string, req CreateBatchRequest) (BatchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create schedule batch requested",
		zap.String("request_id", rid),
		zap.String("branch_id", req.BranchID),
		zap.String("schedule_date", req.ScheduleDate),
	)

	scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return BatchResponse{}, scheduleerrors.ErrInvalidScheduleDate
	}

	shift1, err := s.repo.GetShiftSlot(ctx, shift.KindFirst)
	if err != nil {
		s.logger.Error("lookup first shift failed", zap.Error(err))
		return BatchResponse{}, err
	}
	shift2, err := s.repo.GetShiftSlot(ctx, shift.KindSecond)
	if err != nil {
		s.logger.Error("lookup second shift failed", zap.Error(err))
		return BatchResponse{}, err
	}
	if shift1.ID == uuid.Nil || shift2.ID == uuid.Nil {
		return BatchResponse{}, scheduleerrors.ErrShiftNotConfigured
	}

	plan, err := BuildPlan(shift1, shift2, req.Shift1, req.Shift2)
	if err != nil {
		s.logger.Warn("schedule plan rejected",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return BatchResponse{}, err
	}

	if err := s.verifyEmployees(ctx, plan); err != nil {
		return BatchResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create batch begin tx failed", zap.Error(err))
		return BatchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, req.BranchID, "schedule_batch")
	if err != nil {
		s.logger.Error("create batch generate ref failed", zap.Error(err))
		return BatchResponse{}, err
	}
	batchRef := fmt.Sprintf("SCH-%06d", nextVal)

	branchID := uuid.MustParse(req.BranchID)
	createdBy, _ := uuid.Parse(userID)

	rows := make([]Schedule, len(plan))
	for i, p := range plan {
		rows[i] = Schedule{
			ID:           uuid.New(),
			BatchRef:     batchRef,
			BranchID:     branchID,
			EmployeeID:   p.EmployeeID,
			ShiftID:      p.ShiftID,
			JobTaskID:    p.JobTaskID,
			ScheduleDate: scheduleDate,
			IsOvertime:   p.IsOvertime,
			Status:       StatusScheduled,
			Notes:        req.Notes,
			CreatedBy:    createdBy,
		}
	}

	if err := qtx.CreateBatch(ctx, rows); err != nil {
		s.logger.Error("create batch persist failed",
			zap.String("batch_ref", batchRef),
			zap.Error(err),
		)
		return BatchResponse{}, mapRepositoryError(err)
	}

	overtimeCount := CountOvertime(plan)

	if s.outbox != nil {
		event := events.ScheduleBatchCreatedEvent{
			EventType:     "schedule_batch_created",
			RequestID:     rid,
			BatchRef:      batchRef,
			BranchID:      req.BranchID,
			ScheduleDate:  req.ScheduleDate,
			RowCount:      len(rows),
			OvertimeCount: overtimeCount,
			CreatedBy:     userID,
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return BatchResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.NewPendingEvent(
			uuid.NewString(), rid,
			"schedule_batch", batchRef,
			event.EventType, events.ScheduleBatchCreatedTopic,
			payload,
		)); err != nil {
			s.logger.Error("create batch outbox persist failed",
				zap.String("batch_ref", batchRef),
				zap.Error(err),
			)
			return BatchResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create batch commit failed", zap.Error(err))
		return BatchResponse{}, err
	}

	s.logger.Info("create schedule batch success",
		zap.String("request_id", rid),
		zap.String("batch_ref", batchRef),
		zap.Int("row_count", len(rows)),
		zap.Int("overtime_count", overtimeCount),
	)

	return BatchResponse{
		BatchRef:      batchRef,
		RowCount:      len(rows),
		OvertimeCount: overtimeCount,
		Schedules:     mapToListResponse(rows),
	}, nil
}

// verifyEmployees memastikan semua karyawan dalam rencana ada dan aktif
// sebelum menulis apa pun.
func (s *service) verifyEmployees(ctx context.Context, plan []PlannedRow) error {
	seen := make(map[uuid.UUID]struct{}, len(plan))
	ids := make([]uuid.UUID, 0, len(plan))
	for _, p := range plan {
		if _, ok := seen[p.EmployeeID]; ok {
			continue
		}
		seen[p.EmployeeID] = struct{}{}
		ids = append(ids, p.EmployeeID)
	}

	count, err := s.repo.CountActiveEmployeesByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("verify employees failed", zap.Error(err))
		return err
	}
	if count != int64(len(ids)) {
		return scheduleerrors.ErrUnknownEmployee
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateScheduleRequest) (ScheduleResponse, error) {
	scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidScheduleDate
	}

	// Petunjuk optimis saja. Index unik tetap penjaga sesungguhnya
	// terhadap submission yang berpacu.
	existing, err := s.repo.CountByAssignment(ctx, req.EmployeeID, req.ShiftID, scheduleDate)
	if err != nil {
		return ScheduleResponse{}, err
	}
	if existing > 0 && req.JobTaskID == nil {
		return ScheduleResponse{}, scheduleerrors.ErrDuplicateAssignment
	}

	// Karyawan full time di akhir pekan butuh konfirmasi eksplisit.
	if wd := scheduleDate.Weekday(); (wd == time.Saturday || wd == time.Sunday) && !req.Confirmed {
		employmentType, err := s.repo.GetEmploymentType(ctx, req.EmployeeID)
		if err != nil {
			return ScheduleResponse{}, err
		}
		if employmentType == "full_time" {
			return ScheduleResponse{}, scheduleerrors.ErrWeekendFullTime
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Schedule{
		ID:           uuid.New(),
		BranchID:     uuid.MustParse(req.BranchID),
		EmployeeID:   uuid.MustParse(req.EmployeeID),
		ShiftID:      uuid.MustParse(req.ShiftID),
		ScheduleDate: scheduleDate,
		IsOvertime:   req.IsOvertime,
		Status:       StatusScheduled,
		Notes:        req.Notes,
	}
	if req.JobTaskID != nil {
		taskID := uuid.MustParse(*req.JobTaskID)
		row.JobTaskID = &taskID
	}
	if createdBy, err := uuid.Parse(userID); err == nil {
		row.CreatedBy = createdBy
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create schedule persist failed", zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ScheduleResponse{}, err
	}

	s.logger.Info("create schedule success", zap.String("schedule_id", row.ID.String()))

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ScheduleResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all schedules failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ScheduleResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// UpdateStatus idempoten: status yang sudah sama dianggap sukses tanpa
// menulis apa pun. Transisi hanya boleh dari scheduled.
func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (ScheduleResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if row.Status == req.Status {
		return mapToResponse(*row), nil
	}
	if row.Status != StatusScheduled {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidStatusTransition
	}

	if err := qtx.UpdateStatus(ctx, id, req.Status); err != nil {
		s.logger.Error("update schedule status failed", zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ScheduleResponse{}, err
	}

	row.Status = req.Status
	s.logger.Info("update schedule status success",
		zap.String("schedule_id", id),
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

	s.logger.Info("delete schedule success", zap.String("schedule_id", id))
	return nil
}

func (s *service) GetDraft(ctx context.Context, userID string) (*Wizard, error) {
	w, err := s.drafts.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, scheduleerrors.ErrDraftNotFound) {
			return NewWizard(), nil
		}
		return nil, err
	}
	return w, nil
}

func (s *service) DraftSetBranch(ctx context.Context, userID string, req DraftBranchRequest) (*Wizard, error) {
	if _, err := time.Parse("2006-01-02", req.ScheduleDate); err != nil {
		return nil, scheduleerrors.ErrInvalidScheduleDate
	}

	w, err := s.drafts.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, scheduleerrors.ErrDraftNotFound) {
			return nil, err
		}
		w = NewWizard()
	}

	if err := w.SetBranch(req.BranchID, req.ScheduleDate, req.Notes); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) DraftSetShift1(ctx context.Context, userID string, sel ShiftSelection) (*Wizard, error) {
	return s.draftMutate(ctx, userID, func(w *Wizard) error {
		return w.SetShift1(sel)
	})
}

func (s *service) DraftSetShift2(ctx context.Context, userID string, sel ShiftSelection) (*Wizard, error) {
	return s.draftMutate(ctx, userID, func(w *Wizard) error {
		return w.SetShift2(sel)
	})
}

func (s *service) DraftBack(ctx context.Context, userID string) (*Wizard, error) {
	return s.draftMutate(ctx, userID, func(w *Wizard) error {
		return w.Back()
	})
}

func (s *service) draftMutate(ctx context.Context, userID string, apply func(*Wizard) error) (*Wizard, error) {
	w, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := apply(w); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) DraftSubmit(ctx context.Context, userID string) (BatchResponse, error) {
	w, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return BatchResponse{}, err
	}

	req, err := w.ToBatchRequest()
	if err != nil {
		return BatchResponse{}, err
	}

	resp, err := s.CreateBatch(ctx, userID, req)
	if err != nil {
		return BatchResponse{}, err
	}

	if err := s.drafts.Delete(ctx, userID); err != nil {
		s.logger.Warn("delete submitted draft failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
	return resp, nil
}

func (s *service) DiscardDraft(ctx context.Context, userID string) error {
	return s.drafts.Delete(ctx, userID)
}

func mapToResponse(row Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:           row.ID.String(),
		BatchRef:     row.BatchRef,
		BranchID:     row.BranchID.String(),
		EmployeeID:   row.EmployeeID.String(),
		ShiftID:      row.ShiftID.String(),
		ScheduleDate: row.ScheduleDate.Format("2006-01-02"),
		IsOvertime:   row.IsOvertime,
		Status:       row.Status,
		Notes:        row.Notes,
	}
	if row.JobTaskID != nil {
		v := row.JobTaskID.String()
		resp.JobTaskID = &v
	}
	return resp
}

func mapToListResponse(rows []Schedule) []ScheduleResponse {
	res := make([]ScheduleResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
