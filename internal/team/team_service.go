package team

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetByID(ctx context.Context, id string) (TeamResponse, error)
	Update(ctx context.Context, id string, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	kind := req.Kind
	if kind == "" {
		kind = DeriveKind(req.Name)
	}

	t := &Team{
		ID:          uuid.New(),
		Name:        req.Name,
		Kind:        kind,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, t); err != nil {
		return TeamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TeamResponse{}, err
	}

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(teams), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, apperror.ErrNotFound
		}
		return TeamResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTeamRequest) (TeamResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, apperror.ErrNotFound
		}
		return TeamResponse{}, err
	}

	t.Name = req.Name
	t.Kind = req.Kind
	t.Description = req.Description

	if err := qtx.Update(ctx, t); err != nil {
		return TeamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TeamResponse{}, err
	}

	return mapToResponse(*t), nil
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

func mapToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Kind:        t.Kind,
		Description: t.Description,
	}
}

func mapToListResponse(teams []Team) []TeamResponse {
	resp := make([]TeamResponse, len(teams))
	for i, t := range teams {
		resp[i] = mapToResponse(t)
	}
	return resp
}
