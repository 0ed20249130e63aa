package employee

import (
	"context"
	"database/sql"

	"github.com/abangiyan/hongwei-crew-manager/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindAllByBranch(ctx context.Context, branchID string) ([]Employee, error)
	FindAllByTeamKind(ctx context.Context, branchID, teamKind string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	GetRoleTeamID(ctx context.Context, roleID string) (string, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	ReplaceJobTasks(ctx context.Context, employeeID string, links []EmployeeJobTask) error
	GetJobTasks(ctx context.Context, employeeID string) ([]EmployeeJobTaskResponse, error)
	CountJobTasksByIDs(ctx context.Context, ids []string) (int64, error)
	CountActiveByIDs(ctx context.Context, ids []string) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Branch(branchID)).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

// FindAllByTeamKind dipakai perencana jadwal untuk menyaring kandidat
// frontline atau kitchen pada satu cabang.
func (r *repository) FindAllByTeamKind(ctx context.Context, branchID, teamKind string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN teams ON teams.id = employees.team_id").
		Where("teams.kind = ?", teamKind).
		Where("employees.branch_id = ?", branchID).
		Where("employees.status = ?", StatusActive).
		Order("employees.full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) GetRoleTeamID(ctx context.Context, roleID string) (string, error) {
	var teamID sql.NullString
	err := r.db.WithContext(ctx).
		Table("roles").
		Select("team_id").
		Where("id = ?", roleID).
		Scan(&teamID).Error
	if err != nil {
		return "", err
	}
	return teamID.String, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) ReplaceJobTasks(ctx context.Context, employeeID string, links []EmployeeJobTask) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&EmployeeJobTask{}, "employee_id = ?", employeeID).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

func (r *repository) GetJobTasks(ctx context.Context, employeeID string) ([]EmployeeJobTaskResponse, error) {
	var tasks []EmployeeJobTaskResponse
	err := r.db.WithContext(ctx).
		Table("employee_job_tasks").
		Select("job_tasks.id::text AS id, job_tasks.name AS name").
		Joins("JOIN job_tasks ON job_tasks.id = employee_job_tasks.job_task_id").
		Where("employee_job_tasks.employee_id = ?", employeeID).
		Order("job_tasks.name ASC").
		Scan(&tasks).Error
	return tasks, err
}

func (r *repository) CountJobTasksByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("job_tasks").
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *repository) CountActiveByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id IN ?", ids).
		Where("status = ?", StatusActive).
		Count(&count).Error
	return count, err
}
