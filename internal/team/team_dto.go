package team

type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Kind        string  `json:"kind" binding:"omitempty,oneof=frontline kitchen other"`
	Description *string `json:"description"`
}

type UpdateTeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Kind        string  `json:"kind" binding:"required,oneof=frontline kitchen other"`
	Description *string `json:"description"`
}

type TeamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Description *string `json:"description,omitempty"`
}
