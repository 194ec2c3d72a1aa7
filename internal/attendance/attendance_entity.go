package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentFull    = "full"
	PaymentPartial = "partial"
	PaymentCredit  = "credit"
)

type Attendance struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	ProjectID       uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_attendance_worker_date_project,priority:3"`
	WorkerID        uuid.UUID       `gorm:"column:worker_id;type:uuid;not null;uniqueIndex:uq_attendance_worker_date_project,priority:1"`
	AttendanceDate  time.Time       `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_worker_date_project,priority:2"`
	IsPresent       bool            `gorm:"column:is_present;not null;default:true"`
	StartTime       *string         `gorm:"column:start_time;size:5"`
	EndTime         *string         `gorm:"column:end_time;size:5"`
	HoursWorked     decimal.Decimal `gorm:"column:hours_worked;type:numeric(5,2);not null;default:0"`
	WorkDays        decimal.Decimal `gorm:"column:work_days;type:numeric(4,2);not null;default:1"`
	DailyWage       decimal.Decimal `gorm:"column:daily_wage;type:numeric(15,2);not null"`
	ActualWage      decimal.Decimal `gorm:"column:actual_wage;type:numeric(15,2);not null"`
	PaidAmount      decimal.Decimal `gorm:"column:paid_amount;type:numeric(15,2);not null;default:0"`
	RemainingAmount decimal.Decimal `gorm:"column:remaining_amount;type:numeric(15,2);not null;default:0"`
	PaymentType     string          `gorm:"column:payment_type;size:10;not null"`
	WorkDescription *string         `gorm:"column:work_description;type:text"`
	Notes           *string         `gorm:"column:notes;type:text"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "worker_attendance"
}

// AttendanceView is an attendance row joined with display names.
type AttendanceView struct {
	Attendance
	WorkerName  string `gorm:"column:worker_name"`
	ProjectName string `gorm:"column:project_name"`
}

// WorkerRef is the slice of a worker needed to record attendance.
type WorkerRef struct {
	ID        uuid.UUID       `gorm:"column:id"`
	Name      string          `gorm:"column:name"`
	DailyWage decimal.Decimal `gorm:"column:daily_wage"`
	IsActive  bool            `gorm:"column:is_active"`
}

type Filter struct {
	ProjectID string
	WorkerID  string
	From      *time.Time
	To        *time.Time
}
