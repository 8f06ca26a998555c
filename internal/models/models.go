package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement"               json:"id"`
	Email                  string    `gorm:"not null"                               json:"email"`
	Name                   string    `gorm:"not null"                               json:"name"`
	AvatarURL              string    `json:"avatar_url"`
	AuthProvider           string    `gorm:"not null;uniqueIndex:idx_provider_uid"  json:"-"`
	AuthProviderID         string    `gorm:"not null;uniqueIndex:idx_provider_uid"  json:"-"`
	ReferralCode           string    `gorm:"unique;not null"                        json:"referral_code"`
	ReferralEarnings       float64   `gorm:"not null;default:0"                     json:"referral_earnings"`
	FirstOrderDiscountUsed bool      `gorm:"not null;default:false"                 json:"first_order_discount_used"`
	CreatedAt              time.Time `json:"created_at"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null;index"            json:"name"`
	Category    string  `gorm:"not null;index"            json:"category"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Description string  `gorm:"not null"                  json:"description"`
	ImageURL    string  `json:"image_url"`
	IsActive    bool    `gorm:"not null;default:true"     json:"is_active"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"                             json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_product"  json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_user_product"  json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"             json:"quantity"`
}

type Order struct {
	ID             uint        `gorm:"primaryKey"            json:"id"`
	PublicID       uuid.UUID   `gorm:"type:uuid;uniqueIndex" json:"public_id"`
	UserID         uint        `gorm:"index;not null"        json:"user_id"`
	TotalAmount    float64     `gorm:"not null"              json:"total_amount"`
	DiscountAmount float64     `gorm:"not null;default:0"    json:"discount_amount"`
	FinalAmount    float64     `gorm:"not null"              json:"final_amount"`
	PaymentMethod  string      `gorm:"not null"              json:"payment_method"`
	PaymentStatus  string      `gorm:"not null"              json:"payment_status"`
	Status         string      `gorm:"not null"              json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	Items          []OrderItem `gorm:"foreignKey:OrderID"    json:"items"`
}

// OrderItem is a frozen snapshot of a cart line at order time. Name and
// price are copied from the product row, so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey"     json:"-"`
	OrderID      uint    `gorm:"index;not null" json:"-"`
	ProductID    uint    `gorm:"not null"       json:"product_id"`
	ProductName  string  `gorm:"not null"       json:"product_name"`
	ProductPrice float64 `gorm:"not null"       json:"product_price"`
	Quantity     uint    `gorm:"not null"       json:"quantity"`
	TotalPrice   float64 `gorm:"not null"       json:"total_price"`
}
