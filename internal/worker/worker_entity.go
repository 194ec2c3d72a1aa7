package worker

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Worker struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	Name      string          `gorm:"column:name;size:255;not null"`
	Type      string          `gorm:"column:type;size:100;not null"`
	DailyWage decimal.Decimal `gorm:"column:daily_wage;type:numeric(15,2);not null"`
	Phone     *string         `gorm:"column:phone;size:20"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Worker) TableName() string {
	return "workers"
}
