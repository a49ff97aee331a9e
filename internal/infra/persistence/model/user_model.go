package model

import "time"

// UserModel mirrors the 'users' table. Emails are stored lower-cased.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(40)"`
	Role         string `gorm:"type:varchar(20);not null"`
	Active       bool   `gorm:"not null;default:true"`
	RegisteredAt time.Time
	UpdatedAt    time.Time

	BuyerProfile      *BuyerProfileModel      `gorm:"foreignKey:UserID"`
	DealershipProfile *DealershipProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BuyerProfileModel mirrors the 'buyer_profiles' table. UserID references users.id.
type BuyerProfileModel struct {
	UserID     int64  `gorm:"primaryKey"`
	NationalID string `gorm:"type:varchar(40);not null;uniqueIndex:uq_buyer_profiles_national_id"`
	Address    string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (BuyerProfileModel) TableName() string {
	return "buyer_profiles"
}

// DealershipProfileModel mirrors the 'dealership_profiles' table. UserID references users.id.
type DealershipProfileModel struct {
	UserID       int64  `gorm:"primaryKey"`
	BusinessName string `gorm:"type:varchar(150);not null"`
	TaxID        string `gorm:"type:varchar(40);not null;uniqueIndex:uq_dealership_profiles_tax_id"`
	Address      string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	Province     string `gorm:"type:varchar(100)"`
	Description  string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DealershipProfileModel) TableName() string {
	return "dealership_profiles"
}
