package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/abangiyan/hongwei-crew-manager/internal/scope"

	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID string
	Status     string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *LeaveRequest) error
	FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	CountInWeek(ctx context.Context, employeeID string, monday, sunday time.Time) (int64, error)
	CountSchedulesOnDate(ctx context.Context, employeeID string, date time.Time) (int64, error)
	UpdateDecision(ctx context.Context, req *LeaveRequest) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat semua operasi gorm ke koneksi transaksi yang diberikan,
// baris domain dan baris outbox di dalamnya commit atau rollback bersama.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).Model(&LeaveRequest{})
	if filter.EmployeeID != "" {
		q = q.Scopes(scope.Employee(filter.EmployeeID))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []LeaveRequest
	err := q.Order("leave_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var row LeaveRequest
	err := r.db.WithContext(ctx).
		First(&row, "id = ?", id).Error
	return &row, err
}

// CountInWeek menghitung semua pengajuan dalam pekan itu tanpa melihat
// status, pengajuan yang ditolak pun tetap memblokir pekan tersebut.
func (r *repository) CountInWeek(ctx context.Context, employeeID string, monday, sunday time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(scope.Employee(employeeID)).
		Where("leave_date BETWEEN ? AND ?", monday.Format("2006-01-02"), sunday.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *repository) CountSchedulesOnDate(ctx context.Context, employeeID string, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("schedules").
		Scopes(scope.Employee(employeeID), scope.OnDate("schedule_date", date)).
		Where("status <> ?", "cancelled").
		Count(&count).Error
	return count, err
}

func (r *repository) UpdateDecision(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"status":     req.Status,
			"decided_by": req.DecidedBy,
			"decided_at": req.DecidedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&LeaveRequest{}, "id = ?", id).Error
}
