package branch

type CreateBranchRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
}

type UpdateBranchRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
}

type BranchResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}
