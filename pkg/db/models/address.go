package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved shipping destination in a user's address book.
type Address struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	FullName     string    `gorm:"column:full_name;not null"`
	Phone        string    `gorm:"column:phone;not null"`
	AddressLine1 string    `gorm:"column:address_line1;not null"`
	AddressLine2 *string   `gorm:"column:address_line2"`
	City         string    `gorm:"column:city;not null"`
	State        string    `gorm:"column:state;not null"`
	PostalCode   string    `gorm:"column:postal_code;not null"`
	Country      string    `gorm:"column:country;not null;default:'India'"`
	IsDefault    bool      `gorm:"column:is_default;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
