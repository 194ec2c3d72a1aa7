package worker

import "github.com/shopspring/decimal"

type CreateWorkerRequest struct {
	Name      string          `json:"name" binding:"required,max=255"`
	Type      string          `json:"type" binding:"required,max=100"`
	DailyWage decimal.Decimal `json:"daily_wage"`
	Phone     *string         `json:"phone"`
	IsActive  *bool           `json:"is_active"`
}

type UpdateWorkerRequest struct {
	Name      string          `json:"name" binding:"required,max=255"`
	Type      string          `json:"type" binding:"required,max=100"`
	DailyWage decimal.Decimal `json:"daily_wage"`
	Phone     *string         `json:"phone"`
}

type ToggleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type WorkerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	DailyWage decimal.Decimal `json:"daily_wage"`
	Phone     *string         `json:"phone,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt string          `json:"created_at"`
}

// WorkerOption is the slim shape used by pickers.
type WorkerOption struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	DailyWage decimal.Decimal `json:"daily_wage"`
}
