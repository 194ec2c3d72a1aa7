package fundtransfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeCash   = "cash"
	TypeBank   = "bank"
	TypeHawala = "hawala"
)

// FundTransfer is money injected into a project.
type FundTransfer struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID      uuid.UUID       `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_fund_transfer_number,priority:1"`
	ProjectID      uuid.UUID       `gorm:"column:project_id;type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	SenderName     *string         `gorm:"column:sender_name;size:150"`
	TransferType   string          `gorm:"column:transfer_type;size:10;not null"`
	TransferNumber *string         `gorm:"column:transfer_number;size:50;uniqueIndex:uq_fund_transfer_number,priority:2"`
	TransferDate   time.Time       `gorm:"column:transfer_date;type:date;not null"`
	Notes          *string         `gorm:"column:notes;type:text"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (FundTransfer) TableName() string {
	return "fund_transfers"
}

type FundTransferView struct {
	FundTransfer
	ProjectName string `gorm:"column:project_name"`
}

// ProjectTransfer moves money between two projects of the same company.
type ProjectTransfer struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	FromProjectID uuid.UUID       `gorm:"column:from_project_id;type:uuid;not null;index"`
	ToProjectID   uuid.UUID       `gorm:"column:to_project_id;type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	Reason        *string         `gorm:"column:reason;type:text"`
	TransferDate  time.Time       `gorm:"column:transfer_date;type:date;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (ProjectTransfer) TableName() string {
	return "project_fund_transfers"
}

type ProjectTransferView struct {
	ProjectTransfer
	FromProjectName string `gorm:"column:from_project_name"`
	ToProjectName   string `gorm:"column:to_project_name"`
}

// Filter.ProjectID matches either side of a project transfer.
type Filter struct {
	ProjectID string
	From      *time.Time
	To        *time.Time
}
