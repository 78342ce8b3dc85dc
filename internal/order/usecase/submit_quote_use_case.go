package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
)

const confirmationMessage = "Quote request submitted successfully. You will receive a personalized quote via email within 24 hours."

type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type OrderWriter interface {
	Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error)
}

type OrderItemWriter interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

type ContactMirrorWriter interface {
	InsertTx(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error)
}

// SubmitQuoteUseCase owns the quote-request creation transaction: one order,
// its items, and one mirrored inbox notification, all-or-nothing.
type SubmitQuoteUseCase struct {
	store    TxRunner
	orders   OrderWriter
	items    OrderItemWriter
	contacts ContactMirrorWriter
	logger   *zap.Logger
}

func NewSubmitQuoteUseCase(
	store TxRunner,
	orders OrderWriter,
	items OrderItemWriter,
	contacts ContactMirrorWriter,
	logger *zap.Logger,
) *SubmitQuoteUseCase {
	return &SubmitQuoteUseCase{
		store:    store,
		orders:   orders,
		items:    items,
		contacts: contacts,
		logger:   logger,
	}
}

func (uc *SubmitQuoteUseCase) Submit(ctx context.Context, req dto.SubmitQuoteRequest) (*dto.SubmitQuoteResponse, error) {
	uc.logger.Info("quote request received",
		zap.String("customerEmail", req.CustomerEmail),
		zap.Int("itemCount", len(req.Items)),
	)

	var orderID uint
	err := uc.store.WithinTx(ctx, func(tx *sql.Tx) error {
		order := &domain.Order{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			Status:          domain.OrderStatusPending,
		}

		id, err := uc.orders.Insert(ctx, tx, order)
		if err != nil {
			return err
		}
		orderID = id

		for _, item := range req.Items {
			if _, err := uc.items.Insert(ctx, tx, domain.OrderItem{
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}); err != nil {
				return err
			}
		}

		subject := fmt.Sprintf("%s%d", domain.QuoteRequestSubjectPrefix, orderID)
		mirror := domain.ContactSubmission{
			Name:    req.CustomerName,
			Email:   req.CustomerEmail,
			Phone:   req.CustomerPhone,
			Subject: &subject,
			Message: mirrorMessage(orderID, req),
			Status:  domain.ContactStatusPending,
		}
		_, err = uc.contacts.InsertTx(ctx, tx, mirror)
		return err
	})
	if err != nil {
		uc.logger.Error("quote request failed", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("quote request created", zap.Uint("orderId", orderID))
	return &dto.SubmitQuoteResponse{
		OrderID:             orderID,
		ConfirmationMessage: confirmationMessage,
	}, nil
}

// mirrorMessage renders the human-readable copy of the request so it shows
// up in the existing contact inbox without a dedicated admin view.
func mirrorMessage(orderID uint, req dto.SubmitQuoteRequest) string {
	products := make([]string, len(req.Items))
	for i, item := range req.Items {
		products[i] = fmt.Sprintf("%dx Product ID %d", item.Quantity, item.ProductID)
	}

	var b strings.Builder
	b.WriteString("Quote Request Details:\n")
	fmt.Fprintf(&b, "- Request ID: %d\n", orderID)
	fmt.Fprintf(&b, "- Total Items: %d\n", len(req.Items))
	fmt.Fprintf(&b, "- Products: %s\n", strings.Join(products, ", "))
	fmt.Fprintf(&b, "- Shipping Address: %s\n", req.ShippingAddress)
	if req.Notes != nil && *req.Notes != "" {
		fmt.Fprintf(&b, "- Special Requirements: %s\n", *req.Notes)
	}
	b.WriteString("\nPlease review this quote request and send personalized pricing to the customer.")
	return b.String()
}
