package jobtask

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobtask_repo.go -destination=mock/jobtask_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, jt *JobTask) error
	FindAll(ctx context.Context) ([]JobTask, error)
	FindByID(ctx context.Context, id string) (*JobTask, error)
	CountByIDs(ctx context.Context, ids []string) (int64, error)
	Update(ctx context.Context, jt *JobTask) error
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

func (r *repository) Create(ctx context.Context, jt *JobTask) error {
	return r.db.WithContext(ctx).Create(jt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]JobTask, error) {
	var tasks []JobTask
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*JobTask, error) {
	var jt JobTask
	err := r.db.WithContext(ctx).First(&jt, "id = ?", id).Error
	return &jt, err
}

func (r *repository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&JobTask{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, jt *JobTask) error {
	return r.db.WithContext(ctx).Save(jt).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&JobTask{}, "id = ?", id).Error
}
