package attendance

import "github.com/shopspring/decimal"

// AttendanceInput carries the per worker fields shared by single, bulk and
// update requests.
type AttendanceInput struct {
	IsPresent       *bool            `json:"is_present"`
	StartTime       *string          `json:"start_time"`
	EndTime         *string          `json:"end_time"`
	HoursWorked     *decimal.Decimal `json:"hours_worked"`
	WorkDays        *decimal.Decimal `json:"work_days"`
	DailyWage       *decimal.Decimal `json:"daily_wage"`
	PaidAmount      *decimal.Decimal `json:"paid_amount"`
	WorkDescription *string          `json:"work_description"`
	Notes           *string          `json:"notes"`
}

type RecordAttendanceRequest struct {
	ProjectID      string `json:"project_id" binding:"required,uuid"`
	WorkerID       string `json:"worker_id" binding:"required,uuid"`
	AttendanceDate string `json:"attendance_date" binding:"required"`
	AttendanceInput
}

type BulkAttendanceEntry struct {
	WorkerID string `json:"worker_id" binding:"required,uuid"`
	AttendanceInput
}

type BulkAttendanceRequest struct {
	ProjectID      string                `json:"project_id" binding:"required,uuid"`
	AttendanceDate string                `json:"attendance_date" binding:"required"`
	Entries        []BulkAttendanceEntry `json:"entries" binding:"required,min=1,max=200,dive"`
}

type UpdateAttendanceRequest = RecordAttendanceRequest

type AttendanceResponse struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name,omitempty"`
	WorkerID        string          `json:"worker_id"`
	WorkerName      string          `json:"worker_name,omitempty"`
	AttendanceDate  string          `json:"attendance_date"`
	IsPresent       bool            `json:"is_present"`
	StartTime       *string         `json:"start_time,omitempty"`
	EndTime         *string         `json:"end_time,omitempty"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	WorkDays        decimal.Decimal `json:"work_days"`
	DailyWage       decimal.Decimal `json:"daily_wage"`
	ActualWage      decimal.Decimal `json:"actual_wage"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	PaymentType     string          `json:"payment_type"`
	WorkDescription *string         `json:"work_description,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}
