package branch

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	GetAll(ctx context.Context) ([]BranchResponse, error)
	GetByID(ctx context.Context, id string) (BranchResponse, error)
	Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BranchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b := &Branch{
		ID:      uuid.New(),
		Name:    req.Name,
		Address: req.Address,
	}

	if err := qtx.Create(ctx, b); err != nil {
		return BranchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BranchResponse{}, err
	}

	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context) ([]BranchResponse, error) {
	branches, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(branches), nil
}

func (s *service) GetByID(ctx context.Context, id string) (BranchResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, apperror.ErrNotFound
		}
		return BranchResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BranchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, apperror.ErrNotFound
		}
		return BranchResponse{}, err
	}

	b.Name = req.Name
	b.Address = req.Address

	if err := qtx.Update(ctx, b); err != nil {
		return BranchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BranchResponse{}, err
	}

	return mapToResponse(*b), nil
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

func mapToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:      b.ID.String(),
		Name:    b.Name,
		Address: b.Address,
	}
}

func mapToListResponse(branches []Branch) []BranchResponse {
	resp := make([]BranchResponse, len(branches))
	for i, b := range branches {
		resp[i] = mapToResponse(b)
	}
	return resp
}
