package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
)

// Mock implementations

type mockTxRunner struct {
	// Runs fn with a nil tx; records whether fn succeeded so tests can
	// assert nothing is treated as committed after a failure.
	committed bool
	rolledBack bool
}

func (m *mockTxRunner) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := fn(nil); err != nil {
		m.rolledBack = true
		return err
	}
	m.committed = true
	return nil
}

type mockOrderWriter struct {
	InsertFunc func(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error)
}

func (m *mockOrderWriter) Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
	return m.InsertFunc(ctx, tx, order)
}

type mockOrderItemWriter struct {
	InsertFunc func(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

func (m *mockOrderItemWriter) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	return m.InsertFunc(ctx, tx, item)
}

type mockContactMirrorWriter struct {
	InsertTxFunc func(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error)
}

func (m *mockContactMirrorWriter) InsertTx(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error) {
	return m.InsertTxFunc(ctx, tx, sub)
}

func validSubmitRequest() dto.SubmitQuoteRequest {
	return dto.SubmitQuoteRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "12 Harbour Rd, Valletta",
		Items: []dto.QuoteItem{
			{ProductID: 7, Quantity: 2},
			{ProductID: 9, Quantity: 1},
		},
	}
}

func TestSubmit_CreatesOrderItemsAndMirror(t *testing.T) {
	ctx := context.Background()

	var insertedOrder *domain.Order
	var insertedItems []domain.OrderItem
	var mirror *domain.ContactSubmission

	store := &mockTxRunner{}
	orders := &mockOrderWriter{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
			insertedOrder = order
			return 42, nil
		},
	}
	items := &mockOrderItemWriter{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
			insertedItems = append(insertedItems, item)
			return uint(len(insertedItems)), nil
		},
	}
	contacts := &mockContactMirrorWriter{
		InsertTxFunc: func(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error) {
			mirror = &sub
			return 1, nil
		},
	}

	uc := NewSubmitQuoteUseCase(store, orders, items, contacts, zap.NewNop())

	resp, err := uc.Submit(ctx, validSubmitRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.OrderID != 42 {
		t.Errorf("expected orderId 42, got %d", resp.OrderID)
	}
	if resp.ConfirmationMessage == "" {
		t.Errorf("expected a confirmation message")
	}
	if !store.committed {
		t.Errorf("expected transaction to commit")
	}

	if insertedOrder.Status != domain.OrderStatusPending {
		t.Errorf("expected new order status %q, got %q", domain.OrderStatusPending, insertedOrder.Status)
	}
	if len(insertedItems) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(insertedItems))
	}
	for _, item := range insertedItems {
		if item.OrderID != 42 {
			t.Errorf("expected item linked to order 42, got %d", item.OrderID)
		}
	}

	if mirror == nil {
		t.Fatal("expected contact mirror to be inserted")
	}
	if mirror.Subject == nil || *mirror.Subject != "Quote Request #42" {
		t.Errorf("unexpected mirror subject: %v", mirror.Subject)
	}
	if !strings.Contains(mirror.Message, "2x Product ID 7") {
		t.Errorf("mirror message missing product summary: %s", mirror.Message)
	}
	if !strings.Contains(mirror.Message, "12 Harbour Rd, Valletta") {
		t.Errorf("mirror message missing shipping address: %s", mirror.Message)
	}
}

func TestSubmit_ItemInsertFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	store := &mockTxRunner{}
	orders := &mockOrderWriter{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
			return 42, nil
		},
	}
	items := &mockOrderItemWriter{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
			return 0, errors.New("foreign key violation")
		},
	}
	mirrorCalled := false
	contacts := &mockContactMirrorWriter{
		InsertTxFunc: func(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error) {
			mirrorCalled = true
			return 1, nil
		},
	}

	uc := NewSubmitQuoteUseCase(store, orders, items, contacts, zap.NewNop())

	_, err := uc.Submit(ctx, validSubmitRequest())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !store.rolledBack {
		t.Errorf("expected transaction rollback")
	}
	if store.committed {
		t.Errorf("expected no commit after failed item insert")
	}
	if mirrorCalled {
		t.Errorf("expected mirror insert to be skipped after item failure")
	}
}

func TestSubmit_MirrorFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	store := &mockTxRunner{}
	orders := &mockOrderWriter{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
			return 42, nil
		},
	}
	items := &mockOrderItemWriter{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
			return 1, nil
		},
	}
	contacts := &mockContactMirrorWriter{
		InsertTxFunc: func(ctx context.Context, tx *sql.Tx, sub domain.ContactSubmission) (uint, error) {
			return 0, errors.New("contact_submissions unavailable")
		},
	}

	uc := NewSubmitQuoteUseCase(store, orders, items, contacts, zap.NewNop())

	_, err := uc.Submit(ctx, validSubmitRequest())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if store.committed {
		t.Errorf("expected no commit after failed mirror insert")
	}
}

func TestMirrorMessage_IncludesNotes(t *testing.T) {
	notes := "Need delivery before Friday"
	req := validSubmitRequest()
	req.Notes = &notes

	msg := mirrorMessage(42, req)

	if !strings.Contains(msg, "Special Requirements: Need delivery before Friday") {
		t.Errorf("expected notes in mirror message, got: %s", msg)
	}
	if !strings.Contains(msg, "Total Items: 2") {
		t.Errorf("expected item count in mirror message, got: %s", msg)
	}
}
