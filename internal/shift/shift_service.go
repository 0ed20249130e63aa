package shift

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	kind := req.Kind
	if kind == "" {
		kind = DeriveKind(req.Name)
	}

	sh := &Shift{
		ID:        uuid.New(),
		Name:      req.Name,
		Kind:      kind,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := qtx.Create(ctx, sh); err != nil {
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	return mapToResponse(*sh), nil
}

func (s *service) GetAll(ctx context.Context) ([]ShiftResponse, error) {
	shifts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(shifts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, apperror.ErrNotFound
		}
		return ShiftResponse{}, err
	}
	return mapToResponse(*sh), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sh, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, apperror.ErrNotFound
		}
		return ShiftResponse{}, err
	}

	sh.Name = req.Name
	sh.Kind = req.Kind
	sh.StartTime = req.StartTime
	sh.EndTime = req.EndTime

	if err := qtx.Update(ctx, sh); err != nil {
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	return mapToResponse(*sh), nil
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

func mapToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Kind:      s.Kind,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func mapToListResponse(shifts []Shift) []ShiftResponse {
	resp := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		resp[i] = mapToResponse(s)
	}
	return resp
}
