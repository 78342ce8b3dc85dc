package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientalgroup/internal/domain"
	apperrors "orientalgroup/internal/errors"
	"orientalgroup/internal/infrastructure/mysql"
	"orientalgroup/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertTestOrder(t *testing.T, db *sql.DB, email, status string) uint {
	result, err := db.Exec(`
		INSERT INTO orders (customer_name, customer_email, shipping_address, status)
		VALUES ('Jane Doe', ?, '12 Harbour Rd, Valletta', ?)
	`, email, status)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return uint(id)
}

func TestOrderRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	phone := "+356 2123 4567"
	id, err := repo.Insert(context.Background(), tx, &domain.Order{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   &phone,
		ShippingAddress: "12 Harbour Rd, Valletta",
		Status:          domain.OrderStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	require.NotNil(t, order.CustomerPhone)
	assert.Equal(t, phone, *order.CustomerPhone)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.False(t, order.QuoteAmount.Valid)
	assert.Nil(t, order.QuotedAt)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	_, err := repo.FindByID(context.Background(), 99999)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	id := insertTestOrder(t, db, "jane@example.com", domain.OrderStatusPending)

	err := repo.UpdateStatus(context.Background(), id, domain.OrderStatusProcessing)
	require.NoError(t, err)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), 99999, domain.OrderStatusCompleted)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestOrderRepository_AttachQuote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	id := insertTestOrder(t, db, "jane@example.com", domain.OrderStatusPending)

	notes := "Includes bulk discount"
	amount := decimal.NewFromFloat(1499.99)
	err := repo.AttachQuote(context.Background(), id, amount, &notes)
	require.NoError(t, err)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusQuoted, order.Status)
	require.True(t, order.QuoteAmount.Valid)
	assert.True(t, order.QuoteAmount.Decimal.Equal(amount))
	require.NotNil(t, order.QuoteNotes)
	assert.Equal(t, notes, *order.QuoteNotes)
	assert.NotNil(t, order.QuotedAt)
}

func TestOrderRepository_List_IncludesItemCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	productID := testutil.InsertTestProduct(t, db, "Olive Oil 5L")

	withItems := insertTestOrder(t, db, "jane@example.com", domain.OrderStatusPending)
	noItems := insertTestOrder(t, db, "bob@example.com", domain.OrderStatusCompleted)

	_, err := db.Exec(`INSERT INTO order_items (order_id, product_id, quantity) VALUES (?, ?, 2), (?, ?, 1)`,
		withItems, productID, withItems, productID)
	require.NoError(t, err)

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	counts := map[uint]int{}
	for _, s := range summaries {
		counts[s.ID] = s.ItemCount
	}
	assert.Equal(t, 2, counts[withItems])
	assert.Equal(t, 0, counts[noItems])
}

func TestOrderRepository_CountAndRecentByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	for i := 0; i < 7; i++ {
		insertTestOrder(t, db, "jane@example.com", domain.OrderStatusPending)
	}
	insertTestOrder(t, db, "bob@example.com", domain.OrderStatusPending)

	count, err := repo.CountByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	recent, err := repo.RecentByEmail(context.Background(), "jane@example.com", 5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
	for _, s := range recent {
		assert.Equal(t, "jane@example.com", s.CustomerEmail)
	}
}

// Atomicity: an item insert that violates the product foreign key must
// leave no order behind.
func TestOrderRepository_TxRollbackLeavesNoRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)
	store := mysql.NewStore(db)

	err := store.WithinTx(context.Background(), func(tx *sql.Tx) error {
		id, err := orderRepo.Insert(context.Background(), tx, &domain.Order{
			CustomerName:    "Jane Doe",
			CustomerEmail:   "jane@example.com",
			ShippingAddress: "12 Harbour Rd",
			Status:          domain.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		// 999999 does not exist in products
		_, err = itemRepo.Insert(context.Background(), tx, domain.OrderItem{
			OrderID:   id,
			ProductID: 999999,
			Quantity:  1,
		})
		return err
	})
	require.Error(t, err)

	var orderCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&orderCount))
	assert.Equal(t, 0, orderCount)
}
