package model

import "time"

// CarOfferModel mirrors the 'car_offers' table. Version backs optimistic locking
// and a partial unique index keeps one open offer per (car, dealership).
type CarOfferModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	CarID        int64   `gorm:"not null;index"`
	DealershipID int64   `gorm:"not null;index"`
	Price        float64 `gorm:"type:numeric(12,2);not null"`
	Notes        *string `gorm:"type:text"`
	Available    bool    `gorm:"not null;default:true"`
	Version      int64   `gorm:"not null;default:1"`
	OfferedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarOfferModel) TableName() string {
	return "car_offers"
}
