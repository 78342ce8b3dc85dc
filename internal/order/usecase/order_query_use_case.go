package usecase

import (
	"context"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context) ([]domain.OrderSummary, error)
	CountByEmail(ctx context.Context, email string) (int, error)
	RecentByEmail(ctx context.Context, email string, limit int) ([]domain.OrderSummary, error)
}

type OrderItemReader interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type OrderQueryUseCase struct {
	orders OrderReader
	items  OrderItemReader
}

func NewOrderQueryUseCase(orders OrderReader, items OrderItemReader) *OrderQueryUseCase {
	return &OrderQueryUseCase{orders: orders, items: items}
}

func (uc *OrderQueryUseCase) GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := uc.items.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}

	itemDTOs := make([]dto.OrderItemDTO, 0, len(items))
	for _, it := range items {
		itemDTOs = append(itemDTOs, dto.OrderItemDTO{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Title:       it.ProductTitle,
			Description: it.ProductDescription,
			ImagePath:   it.ProductImagePath,
		})
	}

	return &dto.OrderResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: order.ShippingAddress,
		Status:          order.Status,
		QuoteAmount:     order.QuoteAmount,
		QuoteNotes:      order.QuoteNotes,
		QuotedAt:        order.QuotedAt,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		Items:           itemDTOs,
	}, nil
}

func (uc *OrderQueryUseCase) ListOrders(ctx context.Context) ([]dto.OrderSummaryDTO, error) {
	summaries, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaryDTOs(summaries), nil
}

func (uc *OrderQueryUseCase) UserStats(ctx context.Context, email string) (*dto.UserStatsResponse, error) {
	count, err := uc.orders.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	recent, err := uc.orders.RecentByEmail(ctx, email, 5)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsResponse{
		OrderCount:   count,
		RecentOrders: toSummaryDTOs(recent),
	}, nil
}

func toSummaryDTOs(summaries []domain.OrderSummary) []dto.OrderSummaryDTO {
	out := make([]dto.OrderSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.OrderSummaryDTO{
			ID:            s.ID,
			CustomerName:  s.CustomerName,
			CustomerEmail: s.CustomerEmail,
			Status:        s.Status,
			ItemCount:     s.ItemCount,
			CreatedAt:     s.CreatedAt,
		})
	}
	return out
}
