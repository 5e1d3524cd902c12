package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopkartlabs/shopkart-backend/pkg/enums"
	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

// Order captures a placed checkout with its derived totals frozen.
type Order struct {
	ID              int64                  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderNumber     string                 `gorm:"column:order_number;not null;uniqueIndex"`
	UserID          uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index"`
	AddressID       *int64                 `gorm:"column:address_id"`
	Subtotal        decimal.Decimal        `gorm:"column:subtotal;type:numeric(10,2);not null"`
	Tax             decimal.Decimal        `gorm:"column:tax;type:numeric(10,2);default:0"`
	Shipping        decimal.Decimal        `gorm:"column:shipping;type:numeric(10,2);default:0"`
	TotalAmount     decimal.Decimal        `gorm:"column:total_amount;type:numeric(10,2);not null"`
	PaymentStatus   enums.PaymentStatus    `gorm:"column:payment_status;type:text;not null;default:'pending'"`
	OrderStatus     enums.OrderStatus      `gorm:"column:order_status;type:text;not null;default:'pending'"`
	ShippingAddress *types.ShippingAddress `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	Items           []OrderItem            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem snapshots one purchased line, including the price charged.
type OrderItem struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"column:order_id;not null;index"`
	ProductID       int64           `gorm:"column:product_id;not null"`
	ProductName     string          `gorm:"column:product_name;not null"`
	SellerID        *uuid.UUID      `gorm:"column:seller_id;type:uuid"`
	Quantity        int             `gorm:"column:quantity;not null"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase;type:numeric(10,2);not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}
