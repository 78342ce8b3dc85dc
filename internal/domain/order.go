package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	ShippingAddress string
	Status          string
	QuoteAmount     decimal.NullDecimal
	QuoteNotes      *string
	QuotedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID int
	Quantity  int

	// Product display fields, populated only by the enriched read path.
	ProductTitle       string
	ProductDescription string
	ProductImagePath   string
}

// Quote requests move through a single fixed vocabulary. Any member may be set
// from any other; only creation is pinned to OrderStatusPending.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusQuoted     = "quoted"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderSummary backs the admin listing and the dashboard's recent-orders
// panel: one row per order plus its item count.
type OrderSummary struct {
	ID            uint
	CustomerName  string
	CustomerEmail string
	Status        string
	ItemCount     int
	CreatedAt     time.Time
}

var orderStatuses = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusQuoted:     {},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

func IsValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}
