package shift

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindAll(ctx context.Context) ([]Shift, error)
	FindByID(ctx context.Context, id string) (*Shift, error)
	FindByKind(ctx context.Context, kind string) (*Shift, error)
	Update(ctx context.Context, s *Shift) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Shift, error) {
	var shifts []Shift
	err := r.db.WithContext(ctx).Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByKind(ctx context.Context, kind string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).First(&s, "kind = ?", kind).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Shift{}, "id = ?", id).Error
}
