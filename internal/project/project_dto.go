package project

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Status      string  `json:"status" binding:"omitempty,oneof=active paused completed"`
	Description *string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Status      string  `json:"status" binding:"omitempty,oneof=active paused completed"`
	Description *string `json:"description"`
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
