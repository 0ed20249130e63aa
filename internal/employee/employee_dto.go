package employee

type CreateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	BranchID       string `json:"branch_id" binding:"required,uuid"`
	TeamID         string `json:"team_id" binding:"required,uuid"`
	RoleID         string `json:"role_id" binding:"required,uuid"`
	EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time"`
	HireDate       string `json:"hire_date" binding:"required"`
	EmployeeNumber string `json:"employee_number"`
}

type UpdateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	BranchID       string `json:"branch_id" binding:"required,uuid"`
	TeamID         string `json:"team_id" binding:"required,uuid"`
	RoleID         string `json:"role_id" binding:"required,uuid"`
	EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type AssignJobTasksRequest struct {
	JobTaskIDs []string `json:"job_task_ids" binding:"required,dive,uuid"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	BranchID       string `json:"branch_id"`
	TeamID         string `json:"team_id"`
	RoleID         string `json:"role_id"`
	EmploymentType string `json:"employment_type"`
	Status         string `json:"status"`
	HireDate       string `json:"hire_date"`
}

type EmployeeJobTaskResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
