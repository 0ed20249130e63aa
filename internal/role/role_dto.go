package role

type CreateRoleRequest struct {
	Name   string  `json:"name" binding:"required"`
	TeamID *string `json:"team_id" binding:"omitempty,uuid"`
}

type UpdateRoleRequest struct {
	Name   string  `json:"name" binding:"required"`
	TeamID *string `json:"team_id" binding:"omitempty,uuid"`
}

type RoleResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	TeamID *string `json:"team_id,omitempty"`
}
