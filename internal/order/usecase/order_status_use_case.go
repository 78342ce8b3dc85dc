package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	apperrors "orientalgroup/internal/errors"
)

type OrderStatusRepository interface {
	UpdateStatus(ctx context.Context, id uint, status string) error
	AttachQuote(ctx context.Context, id uint, amount decimal.Decimal, notes *string) error
}

type OrderStatusUseCase struct {
	orders OrderStatusRepository
	logger *zap.Logger
}

func NewOrderStatusUseCase(orders OrderStatusRepository, logger *zap.Logger) *OrderStatusUseCase {
	return &OrderStatusUseCase{orders: orders, logger: logger}
}

// UpdateStatus sets any member of the fixed enumeration. No adjacency rules:
// the back-office may move an order between any two valid states.
func (uc *OrderStatusUseCase) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !domain.IsValidOrderStatus(status) {
		return apperrors.NewInvalidStatusError(status)
	}

	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	uc.logger.Info("order status updated", zap.Uint("orderId", id), zap.String("status", status))
	return nil
}

func (uc *OrderStatusUseCase) AttachQuote(ctx context.Context, id uint, amount decimal.Decimal, notes *string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError("quote amount must be positive", apperrors.ValidationDetail{
			Field:   "quoteAmount",
			Message: "quoteAmount must be greater than 0",
		})
	}

	if err := uc.orders.AttachQuote(ctx, id, amount, notes); err != nil {
		return err
	}

	uc.logger.Info("quote attached", zap.Uint("orderId", id), zap.String("amount", amount.String()))
	return nil
}
