package model

import (
	"time"

	"gorm.io/datatypes"
)

// CarModel mirrors the 'cars' table. Images are kept in a JSONB array.
type CarModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Brand        string  `gorm:"type:varchar(60);not null;index"`
	Model        string  `gorm:"type:varchar(60);not null"`
	Year         int     `gorm:"not null"`
	Mileage      int     `gorm:"not null;default:0"`
	Color        string  `gorm:"type:varchar(40)"`
	FuelType     string  `gorm:"type:varchar(20);not null"`
	Transmission string  `gorm:"type:varchar(20);not null"`
	Plate        string  `gorm:"type:varchar(20);not null;uniqueIndex:uq_cars_plate"`
	Description  *string `gorm:"type:text"`
	Images       datatypes.JSONSlice[string]
	Available    bool `gorm:"not null;default:true;index"`
	PublishedAt  time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}
