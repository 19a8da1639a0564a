// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is one flat row of the order_details table. There is no
// normalized order entity in storage; many lines share one OrderID and the
// logical order is reconstructed at read time. Price is stored as text and
// parsed at aggregation time, matching the source table.
type OrderLine struct {
	BaseModel
	OrderID uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	UserID  *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	Name    string     `json:"name" gorm:"size:255"`
	Color   string     `json:"color" gorm:"size:50"`
	Size    string     `json:"size" gorm:"size:50"`
	Price   string     `json:"price" gorm:"size:50"`
	Status  string     `json:"status" gorm:"size:20;index"`
}

func (OrderLine) TableName() string {
	return "order_details"
}

// OrderProduct is the per-line subset carried on the grouped view.
type OrderProduct struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
	Price string `json:"price"`
}

// Order is the derived view grouped by OrderID. Never persisted.
type Order struct {
	OrderID     uuid.UUID      `json:"order_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Status      string         `json:"status"`
	User        *User          `json:"user"`
	Products    []OrderProduct `json:"products"`
	TotalAmount float64        `json:"total_amount"`
}
