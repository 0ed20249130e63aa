package schedule

import (
	"context"
	"database/sql"
	"time"

	"github.com/abangiyan/hongwei-crew-manager/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	BranchID   string
	EmployeeID string
	Date       string
	Status     string
}

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Schedule) error
	CreateBatch(ctx context.Context, rows []Schedule) error
	FindAll(ctx context.Context, filter ListFilter) ([]Schedule, error)
	FindByID(ctx context.Context, id string) (*Schedule, error)
	GetShiftSlot(ctx context.Context, kind string) (ShiftSlot, error)
	CountActiveEmployeesByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	GetEmploymentType(ctx context.Context, employeeID string) (string, error)
	CountByAssignment(ctx context.Context, employeeID, shiftID string, date time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
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

func (r *repository) Create(ctx context.Context, row *Schedule) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// CreateBatch menulis seluruh baris sebagai satu INSERT multi-row,
// semua masuk atau tidak sama sekali.
func (r *repository) CreateBatch(ctx context.Context, rows []Schedule) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Schedule, error) {
	q := r.db.WithContext(ctx).Model(&Schedule{})
	if filter.BranchID != "" {
		q = q.Scopes(scope.Branch(filter.BranchID))
	}
	if filter.EmployeeID != "" {
		q = q.Scopes(scope.Employee(filter.EmployeeID))
	}
	if filter.Date != "" {
		q = q.Where("schedule_date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []Schedule
	err := q.Order("schedule_date ASC, created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Schedule, error) {
	var row Schedule
	err := r.db.WithContext(ctx).
		First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) GetShiftSlot(ctx context.Context, kind string) (ShiftSlot, error) {
	var slot struct {
		ID   uuid.UUID
		Name string
	}
	err := r.db.WithContext(ctx).
		Table("shifts").
		Select("id, name").
		Where("kind = ?", kind).
		Scan(&slot).Error
	return ShiftSlot{ID: slot.ID, Name: slot.Name}, err
}

func (r *repository) CountActiveEmployeesByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id IN ?", ids).
		Where("status = ?", "active").
		Count(&count).Error
	return count, err
}

// GetEmploymentType membaca tipe kerja karyawan dari tabel employees,
// dipakai untuk peringatan jadwal akhir pekan.
func (r *repository) GetEmploymentType(ctx context.Context, employeeID string) (string, error) {
	var employmentType string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employment_type").
		Where("id = ?", employeeID).
		Scan(&employmentType).Error
	return employmentType, err
}

func (r *repository) CountByAssignment(ctx context.Context, employeeID, shiftID string, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Schedule{}).
		Scopes(scope.Employee(employeeID), scope.OnDate("schedule_date", date)).
		Where("shift_id = ?", shiftID).
		Count(&count).Error
	return count, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&Schedule{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Schedule{}, "id = ?", id).Error
}
