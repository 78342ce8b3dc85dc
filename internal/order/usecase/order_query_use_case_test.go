package usecase

import (
	"context"
	"testing"
	"time"

	"orientalgroup/internal/domain"
	apperrors "orientalgroup/internal/errors"
)

type mockOrderReader struct {
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Order, error)
	ListFunc          func(ctx context.Context) ([]domain.OrderSummary, error)
	CountByEmailFunc  func(ctx context.Context, email string) (int, error)
	RecentByEmailFunc func(ctx context.Context, email string, limit int) ([]domain.OrderSummary, error)
}

func (m *mockOrderReader) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderReader) List(ctx context.Context) ([]domain.OrderSummary, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderReader) CountByEmail(ctx context.Context, email string) (int, error) {
	return m.CountByEmailFunc(ctx, email)
}

func (m *mockOrderReader) RecentByEmail(ctx context.Context, email string, limit int) ([]domain.OrderSummary, error) {
	return m.RecentByEmailFunc(ctx, email, limit)
}

type mockOrderItemReader struct {
	FindByOrderIDFunc func(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

func (m *mockOrderItemReader) FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

func TestGetOrder_EnrichesItems(t *testing.T) {
	now := time.Now()
	orders := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{
				ID:              id,
				CustomerName:    "Jane Doe",
				CustomerEmail:   "jane@example.com",
				ShippingAddress: "12 Harbour Rd",
				Status:          domain.OrderStatusPending,
				CreatedAt:       now,
				UpdatedAt:       now,
			}, nil
		},
	}
	items := &mockOrderItemReader{
		FindByOrderIDFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			return []domain.OrderItem{
				{ID: 1, OrderID: orderID, ProductID: 7, Quantity: 2, ProductTitle: "Olive Oil 5L", ProductImagePath: "/img/olive.jpg"},
			}, nil
		},
	}

	uc := NewOrderQueryUseCase(orders, items)

	resp, err := uc.GetOrder(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ID != 42 {
		t.Errorf("expected id 42, got %d", resp.ID)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].Title != "Olive Oil 5L" {
		t.Errorf("expected product title on item, got %q", resp.Items[0].Title)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	orders := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	items := &mockOrderItemReader{
		FindByOrderIDFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			t.Fatal("items must not be loaded for a missing order")
			return nil, nil
		},
	}

	uc := NewOrderQueryUseCase(orders, items)

	_, err := uc.GetOrder(context.Background(), 99)
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestUserStats_CapsRecentOrders(t *testing.T) {
	var gotLimit int
	orders := &mockOrderReader{
		CountByEmailFunc: func(ctx context.Context, email string) (int, error) {
			return 12, nil
		},
		RecentByEmailFunc: func(ctx context.Context, email string, limit int) ([]domain.OrderSummary, error) {
			gotLimit = limit
			return []domain.OrderSummary{{ID: 12}, {ID: 11}}, nil
		},
	}

	uc := NewOrderQueryUseCase(orders, &mockOrderItemReader{})

	stats, err := uc.UserStats(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.OrderCount != 12 {
		t.Errorf("expected order count 12, got %d", stats.OrderCount)
	}
	if gotLimit != 5 {
		t.Errorf("expected recent orders limit 5, got %d", gotLimit)
	}
	if len(stats.RecentOrders) != 2 {
		t.Errorf("expected 2 recent orders, got %d", len(stats.RecentOrders))
	}
}

func TestListOrders_EmptyResult(t *testing.T) {
	orders := &mockOrderReader{
		ListFunc: func(ctx context.Context) ([]domain.OrderSummary, error) {
			return nil, nil
		},
	}

	uc := NewOrderQueryUseCase(orders, &mockOrderItemReader{})

	summaries, err := uc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summaries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(summaries) != 0 {
		t.Errorf("expected no summaries, got %d", len(summaries))
	}
}
