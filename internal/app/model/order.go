package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderNumberLength is how many leading characters of the order id form the
// human-facing order number.
const OrderNumberLength = 8

type Order struct {
	ID              string         `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID      string         `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"not null" json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone"`
	DeliveryAddress string         `gorm:"type:text" json:"delivery_address"`
	TotalAmount     float64        `gorm:"not null" json:"total_amount"`
	Status          OrderStatus    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes           string         `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Number returns the human-facing order number: the first eight characters of
// the order id, uppercased.
func (o *Order) Number() string {
	id := o.ID
	if len(id) > OrderNumberLength {
		id = id[:OrderNumberLength]
	}
	return strings.ToUpper(id)
}

// OrderItem is one cart line frozen at order time. The product name and price
// are denormalized snapshots so later catalog changes don't rewrite history.
type OrderItem struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      string         `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    string         `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName  string         `gorm:"not null" json:"product_name"`
	ProductPrice float64        `gorm:"not null" json:"product_price"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	Subtotal     float64        `gorm:"not null" json:"subtotal"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
