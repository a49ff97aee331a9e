package model

import "time"

// FavoriteCarModel mirrors the 'favorite_cars' table.
type FavoriteCarModel struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement"`
	BuyerID            int64   `gorm:"not null;uniqueIndex:uq_favorite_cars_buyer_car"`
	CarID              int64   `gorm:"not null;uniqueIndex:uq_favorite_cars_buyer_car;index"`
	Rating             *int    `gorm:"type:smallint"`
	Comment            *string `gorm:"type:text"`
	NotifyPriceChanges bool    `gorm:"not null;default:false"`
	AddedAt            time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteCarModel) TableName() string {
	return "favorite_cars"
}
