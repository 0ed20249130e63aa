package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveDate  string `json:"leave_date" binding:"required"`
	Reason     string `json:"reason"`
	// Confirmed harus true untuk meneruskan pengajuan yang bentrok
	// dengan jadwal yang sudah ada pada tanggal itu.
	Confirmed bool `json:"confirmed"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveDate  string `json:"leave_date"`
	ISOWeek    string `json:"iso_week"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
	DecidedBy  string `json:"decided_by,omitempty"`
	DecidedAt  string `json:"decided_at,omitempty"`
}
