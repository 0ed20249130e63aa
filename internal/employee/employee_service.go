package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "github.com/abangiyan/hongwei-crew-manager/internal/employee/errors"
	"github.com/abangiyan/hongwei-crew-manager/internal/events"
	"github.com/abangiyan/hongwei-crew-manager/internal/messaging/kafka"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/contextutil"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(branchID string) string {
	return EmployeeOptionsKeyPrefix + branchID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, branchID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, branchID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	AssignJobTasks(ctx context.Context, id string, req AssignJobTasksRequest) error
	GetJobTasks(ctx context.Context, id string) ([]EmployeeJobTaskResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("branch_id", req.BranchID),
		zap.String("email", req.Email),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Role harus milik tim yang dipilih. Role tanpa tim (mis. Owner) bebas.
	roleTeamID, err := qtx.GetRoleTeamID(ctx, req.RoleID)
	if err != nil {
		s.logger.Error("create employee lookup role team failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if roleTeamID != "" && roleTeamID != req.TeamID {
		s.logger.Warn("create employee role not in team",
			zap.String("role_id", req.RoleID),
			zap.String("team_id", req.TeamID),
		)
		return EmployeeResponse{}, employeeerrors.ErrRoleNotInTeam
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, req.BranchID, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = EmploymentFullTime
	}

	empl := &Employee{
		ID:             uuid.New(),
		BranchID:       uuid.MustParse(req.BranchID),
		TeamID:         uuid.MustParse(req.TeamID),
		RoleID:         uuid.MustParse(req.RoleID),
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		EmploymentType: employmentType,
		Status:         StatusActive,
		HireDate:       hireDate,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			BranchID:   req.BranchID,
			TeamID:     req.TeamID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.NewPendingEvent(
			uuid.NewString(), rid,
			"employee", empl.ID.String(),
			event.EventType, events.EmployeeCreatedTopic,
			payload,
		)); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, req.BranchID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, branchID string) ([]EmployeeResponse, error) {
	var (
		empls []Employee
		err   error
	)
	if branchID != "" {
		empls, err = s.repo.FindAllByBranch(ctx, branchID)
	} else {
		empls, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context, branchID string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(branchID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight menahan stampede saat manajer membuka wizard jadwal bersamaan.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAllByBranch(ctx, branchID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	roleTeamID, err := qtx.GetRoleTeamID(ctx, req.RoleID)
	if err != nil {
		s.logger.Error("update employee lookup role team failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if roleTeamID != "" && roleTeamID != req.TeamID {
		return EmployeeResponse{}, employeeerrors.ErrRoleNotInTeam
	}

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.BranchID = uuid.MustParse(req.BranchID)
	empl.TeamID = uuid.MustParse(req.TeamID)
	empl.RoleID = uuid.MustParse(req.RoleID)
	empl.HireDate = hireDate
	if req.EmploymentType != "" {
		empl.EmploymentType = req.EmploymentType
	}
	if req.Status != "" {
		empl.Status = req.Status
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, req.BranchID)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx, empl.BranchID.String())

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) AssignJobTasks(ctx context.Context, id string, req AssignJobTasksRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if len(req.JobTaskIDs) > 0 {
		count, err := qtx.CountJobTasksByIDs(ctx, req.JobTaskIDs)
		if err != nil {
			return err
		}
		if count != int64(len(req.JobTaskIDs)) {
			return employeeerrors.ErrUnknownJobTask
		}
	}

	links := make([]EmployeeJobTask, 0, len(req.JobTaskIDs))
	for _, taskID := range req.JobTaskIDs {
		links = append(links, EmployeeJobTask{
			EmployeeID: empl.ID,
			JobTaskID:  uuid.MustParse(taskID),
		})
	}

	if err := qtx.ReplaceJobTasks(ctx, id, links); err != nil {
		s.logger.Error("assign job tasks failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("assign job tasks success",
		zap.String("employee_id", id),
		zap.Int("count", len(links)),
	)
	return nil
}

func (s *service) GetJobTasks(ctx context.Context, id string) ([]EmployeeJobTaskResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.repo.GetJobTasks(ctx, id)
}

func (s *service) invalidateOptionsCache(ctx context.Context, branchID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(branchID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		Email:          empl.Email,
		Phone:          empl.Phone,
		BranchID:       empl.BranchID.String(),
		TeamID:         empl.TeamID.String(),
		RoleID:         empl.RoleID.String(),
		EmploymentType: empl.EmploymentType,
		Status:         empl.Status,
		HireDate:       empl.HireDate.Format("2006-01-02"),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
