package shift

type CreateShiftRequest struct {
	Name      string `json:"name" binding:"required"`
	Kind      string `json:"kind" binding:"omitempty,oneof=first second other"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateShiftRequest struct {
	Name      string `json:"name" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=first second other"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
