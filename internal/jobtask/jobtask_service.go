package jobtask

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=jobtask_service.go -destination=mock/jobtask_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobTaskRequest) (JobTaskResponse, error)
	GetAll(ctx context.Context) ([]JobTaskResponse, error)
	GetByID(ctx context.Context, id string) (JobTaskResponse, error)
	Update(ctx context.Context, id string, req UpdateJobTaskRequest) (JobTaskResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateJobTaskRequest) (JobTaskResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobTaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	jt := &JobTask{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, jt); err != nil {
		return JobTaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return JobTaskResponse{}, err
	}

	return mapToResponse(*jt), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobTaskResponse, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(tasks), nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobTaskResponse, error) {
	jt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobTaskResponse{}, apperror.ErrNotFound
		}
		return JobTaskResponse{}, err
	}
	return mapToResponse(*jt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobTaskRequest) (JobTaskResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobTaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	jt, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobTaskResponse{}, apperror.ErrNotFound
		}
		return JobTaskResponse{}, err
	}

	jt.Name = req.Name
	jt.Description = req.Description

	if err := qtx.Update(ctx, jt); err != nil {
		return JobTaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return JobTaskResponse{}, err
	}

	return mapToResponse(*jt), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(jt JobTask) JobTaskResponse {
	return JobTaskResponse{
		ID:          jt.ID.String(),
		Name:        jt.Name,
		Description: jt.Description,
	}
}

func mapToListResponse(tasks []JobTask) []JobTaskResponse {
	resp := make([]JobTaskResponse, len(tasks))
	for i, jt := range tasks {
		resp[i] = mapToResponse(jt)
	}
	return resp
}
