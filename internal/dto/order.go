package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitQuoteRequest struct {
	CustomerName    string      `json:"customerName" validate:"required"`
	CustomerEmail   string      `json:"customerEmail" validate:"required,email"`
	CustomerPhone   *string     `json:"customerPhone"`
	ShippingAddress string      `json:"shippingAddress" validate:"required"`
	Items           []QuoteItem `json:"items" validate:"required,min=1,dive"`
	Notes           *string     `json:"notes"`
}

type QuoteItem struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type SubmitQuoteResponse struct {
	OrderID             uint   `json:"orderId"`
	ConfirmationMessage string `json:"confirmationMessage"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AttachQuoteRequest struct {
	QuoteAmount decimal.Decimal `json:"quoteAmount"`
	QuoteNotes  *string         `json:"quoteNotes"`
}

type OrderItemDTO struct {
	ID          uint   `json:"id"`
	ProductID   int    `json:"productId"`
	Quantity    int    `json:"quantity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImagePath   string `json:"imagePath"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   *string             `json:"customerPhone"`
	ShippingAddress string              `json:"shippingAddress"`
	Status          string              `json:"status"`
	QuoteAmount     decimal.NullDecimal `json:"quoteAmount"`
	QuoteNotes      *string             `json:"quoteNotes"`
	QuotedAt        *time.Time          `json:"quotedAt"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Items           []OrderItemDTO      `json:"items"`
}

type OrderSummaryDTO struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Status        string    `json:"status"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UserStatsResponse struct {
	OrderCount   int               `json:"orderCount"`
	RecentOrders []OrderSummaryDTO `json:"recentOrders"`
}
