package model

import "time"

// PurchaseModel mirrors the 'purchases' table.
type PurchaseModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	BuyerID       int64   `gorm:"not null;index"`
	CarOfferID    int64   `gorm:"not null;index"`
	FinalPrice    float64 `gorm:"type:numeric(12,2);not null"`
	Status        string  `gorm:"type:varchar(20);not null"`
	PaymentMethod string  `gorm:"type:varchar(20);not null"`
	Observations  *string `gorm:"type:text"`
	PurchasedAt   time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
