package schedule

// FrontlineAssignment memilih satu karyawan frontline beserta job task
// yang dia pegang pada shift itu. Job task kosong ditolak saat validasi
// rencana, bukan saat binding, supaya errornya menyebut nama shift.
type FrontlineAssignment struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	JobTaskIDs []string `json:"job_task_ids" binding:"omitempty,dive,uuid"`
}

type ShiftSelection struct {
	Frontline []FrontlineAssignment `json:"frontline" binding:"omitempty,dive"`
	Kitchen   []string              `json:"kitchen" binding:"omitempty,dive,uuid"`
}

func (s ShiftSelection) Empty() bool {
	return len(s.Frontline) == 0 && len(s.Kitchen) == 0
}

type CreateBatchRequest struct {
	BranchID     string         `json:"branch_id" binding:"required,uuid"`
	ScheduleDate string         `json:"schedule_date" binding:"required"`
	Notes        string         `json:"notes"`
	Shift1       ShiftSelection `json:"shift1"`
	Shift2       ShiftSelection `json:"shift2"`
}

type CreateScheduleRequest struct {
	BranchID     string  `json:"branch_id" binding:"required,uuid"`
	EmployeeID   string  `json:"employee_id" binding:"required,uuid"`
	ShiftID      string  `json:"shift_id" binding:"required,uuid"`
	JobTaskID    *string `json:"job_task_id" binding:"omitempty,uuid"`
	ScheduleDate string  `json:"schedule_date" binding:"required"`
	IsOvertime   bool    `json:"is_overtime"`
	Notes        string  `json:"notes"`
	// Confirmed meloloskan peringatan akhir pekan untuk karyawan full time.
	Confirmed bool `json:"confirmed"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

type DraftBranchRequest struct {
	BranchID     string `json:"branch_id" binding:"required,uuid"`
	ScheduleDate string `json:"schedule_date" binding:"required"`
	Notes        string `json:"notes"`
}

type ScheduleResponse struct {
	ID           string  `json:"id"`
	BatchRef     string  `json:"batch_ref,omitempty"`
	BranchID     string  `json:"branch_id"`
	EmployeeID   string  `json:"employee_id"`
	ShiftID      string  `json:"shift_id"`
	JobTaskID    *string `json:"job_task_id,omitempty"`
	ScheduleDate string  `json:"schedule_date"`
	IsOvertime   bool    `json:"is_overtime"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
}

type BatchResponse struct {
	BatchRef      string             `json:"batch_ref"`
	RowCount      int                `json:"row_count"`
	OvertimeCount int                `json:"overtime_count"`
	Schedules     []ScheduleResponse `json:"schedules"`
}
