package workertransfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MethodHawala = "hawala"
	MethodBank   = "bank"
	MethodCash   = "cash"
)

func IsValidMethod(m string) bool {
	switch m {
	case MethodHawala, MethodBank, MethodCash:
		return true
	}
	return false
}

type WorkerTransfer struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID      uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	WorkerID       uuid.UUID       `gorm:"column:worker_id;type:uuid;not null;index"`
	ProjectID      uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	RecipientName  string          `gorm:"column:recipient_name;size:150;not null"`
	RecipientPhone *string         `gorm:"column:recipient_phone;size:20"`
	TransferMethod string          `gorm:"column:transfer_method;size:10;not null"`
	TransferNumber *string         `gorm:"column:transfer_number;size:50"`
	TransferDate   time.Time       `gorm:"column:transfer_date;type:date;not null"`
	Notes          *string         `gorm:"column:notes;type:text"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (WorkerTransfer) TableName() string {
	return "worker_transfers"
}

type TransferView struct {
	WorkerTransfer
	WorkerName  string `gorm:"column:worker_name"`
	ProjectName string `gorm:"column:project_name"`
}

type Filter struct {
	WorkerID  string
	ProjectID string
	From      *time.Time
	To        *time.Time
}
