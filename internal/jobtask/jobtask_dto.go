package jobtask

type CreateJobTaskRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateJobTaskRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type JobTaskResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
