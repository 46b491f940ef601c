package repository

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/minimartlabs/minimart/internal/errors"
)

func seedProduct(t *testing.T, store *MemoryStore, name string, price string) Product {
	t.Helper()
	product, err := store.InsertProduct(context.Background(), InsertProductParams{
		Name:        name,
		Description: gofakeit.Sentence(5),
		Price:       decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return product
}

func TestMemoryStoreProducts(t *testing.T) {
	c := context.Background()
	store := NewMemoryStore()

	first := seedProduct(t, store, "Apple", "1.50")
	second := seedProduct(t, store, "Banana", "0.75")

	products, err := store.FindProducts(c)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.EqualValues(t, first.ID, products[0].ID, "products should keep insertion order")
	assert.EqualValues(t, second.ID, products[1].ID, "products should keep insertion order")

	found, err := store.FindProductById(c, first.ID)
	require.NoError(t, err)
	assert.EqualValues(t, "Apple", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("1.50")))

	_, err = store.FindProductById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestMemoryStoreCartAppendsRows(t *testing.T) {
	c := context.Background()
	store := NewMemoryStore()
	product := seedProduct(t, store, "Apple", "1.50")

	for range 2 {
		_, err := store.InsertCartItem(c, InsertCartItemParams{
			CartID:    "default",
			ProductID: product.ID,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	items, err := store.FindCartItems(c, "default")
	require.NoError(t, err)
	assert.Len(t, items, 2, "adding the same product twice should keep two rows")
}

func TestMemoryStoreCartTotal(t *testing.T) {
	c := context.Background()
	store := NewMemoryStore()
	product := seedProduct(t, store, "Apple", "1.50")

	_, err := store.InsertCartItem(c, InsertCartItemParams{
		CartID:    "default",
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)

	items, err := store.FindCartItems(c, "default")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, "Apple", items[0].ProductName)
	assert.True(t, items[0].LineTotal().Equal(decimal.RequireFromString("4.50")))
	assert.True(t, CartTotal(items).Equal(decimal.RequireFromString("4.50")))
}

func TestMemoryStoreCartUnknownProduct(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.InsertCartItem(context.Background(), InsertCartItemParams{
		CartID:    "default",
		ProductID: uuid.New(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestMemoryStoreCartsAreIsolated(t *testing.T) {
	c := context.Background()
	store := NewMemoryStore()
	product := seedProduct(t, store, "Apple", "1.50")

	_, err := store.InsertCartItem(c, InsertCartItemParams{
		CartID:    "cart-a",
		ProductID: product.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	items, err := store.FindCartItems(c, "cart-b")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStoreCheckout(t *testing.T) {
	c := context.Background()
	store := NewMemoryStore()
	apple := seedProduct(t, store, "Apple", "1.50")
	banana := seedProduct(t, store, "Banana", "0.75")

	_, err := store.InsertCartItem(c, InsertCartItemParams{
		CartID:    "default",
		ProductID: apple.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	_, err = store.InsertCartItem(c, InsertCartItemParams{
		CartID:    "default",
		ProductID: banana.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	order, orderItems, err := store.CreateOrderFromCart(c, "default")
	require.NoError(t, err)
	require.Len(t, orderItems, 2)
	assert.True(
		t,
		order.Total.Equal(decimal.RequireFromString("6.00")),
		"order total should equal the sum of line totals",
	)
	assert.EqualValues(t, apple.ID, orderItems[0].ProductID)
	assert.True(t, orderItems[0].UnitPrice.Equal(apple.Price), "unit price should be captured at checkout")

	items, err := store.FindCartItems(c, "default")
	require.NoError(t, err)
	assert.Empty(t, items, "checkout should clear the cart")

	found, foundItems, err := store.FindOrderById(c, order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, order.ID, found.ID)
	assert.Len(t, foundItems, 2)

	orders, err := store.FindOrders(c)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.EqualValues(t, order.ID, orders[0].ID)
}

func TestMemoryStoreCheckoutEmptyCart(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := store.CreateOrderFromCart(context.Background(), "default")
	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
}

func TestMemoryStoreOrderNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := store.FindOrderById(context.Background(), uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}
