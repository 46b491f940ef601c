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

func mustInsertProduct(t *testing.T, c context.Context, queries *Queries, name string, price string) Product {
	t.Helper()
	product, err := queries.InsertProduct(c, InsertProductParams{
		Name:        name,
		Description: gofakeit.Sentence(5),
		Price:       decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return product
}

func TestQueriesProducts(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	apple := mustInsertProduct(t, c, queries, "Apple", "1.50")
	banana := mustInsertProduct(t, c, queries, "Banana", "0.75")
	assert.True(t, apple.Price.Equal(decimal.RequireFromString("1.50")))

	products, err := queries.FindProducts(c)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.EqualValues(t, apple.ID, products[0].ID, "products should keep insertion order")
	assert.EqualValues(t, banana.ID, products[1].ID, "products should keep insertion order")

	found, err := queries.FindProductById(c, apple.ID)
	require.NoError(t, err)
	assert.EqualValues(t, "Apple", found.Name)
	assert.True(t, found.Price.Equal(apple.Price))

	_, err = queries.FindProductById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestQueriesCartItems(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	apple := mustInsertProduct(t, c, queries, "Apple", "1.50")

	for range 2 {
		_, err := queries.InsertCartItem(c, InsertCartItemParams{
			CartID:    "default",
			ProductID: apple.ID,
			Quantity:  1,
		})
		require.NoError(t, err)
	}
	_, err := queries.InsertCartItem(c, InsertCartItemParams{
		CartID:    "other",
		ProductID: apple.ID,
		Quantity:  3,
	})
	require.NoError(t, err)

	items, err := queries.FindCartItems(c, "default")
	require.NoError(t, err)
	require.Len(t, items, 2, "adding the same product twice should keep two rows")
	assert.EqualValues(t, "Apple", items[0].ProductName)
	assert.True(t, items[0].UnitPrice.Equal(apple.Price))
	assert.True(t, CartTotal(items).Equal(decimal.RequireFromString("3.00")))

	otherItems, err := queries.FindCartItems(c, "other")
	require.NoError(t, err)
	require.Len(t, otherItems, 1)
	assert.True(t, otherItems[0].LineTotal().Equal(decimal.RequireFromString("4.50")))
}

func TestQueriesCartItemUnknownProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	_, err := queries.InsertCartItem(c, InsertCartItemParams{
		CartID:    "default",
		ProductID: uuid.New(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestQueriesCreateOrderFromCart(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	apple := mustInsertProduct(t, c, queries, "Apple", "1.50")
	banana := mustInsertProduct(t, c, queries, "Banana", "0.75")

	_, err := queries.InsertCartItem(c, InsertCartItemParams{
		CartID:    "default",
		ProductID: apple.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	_, err = queries.InsertCartItem(c, InsertCartItemParams{
		CartID:    "default",
		ProductID: banana.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	order, orderItems, err := queries.CreateOrderFromCart(c, "default")
	require.NoError(t, err)
	require.Len(t, orderItems, 2)
	assert.True(
		t,
		order.Total.Equal(decimal.RequireFromString("6.00")),
		"order total should equal the sum of line totals",
	)
	assert.EqualValues(t, apple.ID, orderItems[0].ProductID)
	assert.True(t, orderItems[0].UnitPrice.Equal(apple.Price), "unit price should be captured at checkout")

	items, err := queries.FindCartItems(c, "default")
	require.NoError(t, err)
	assert.Empty(t, items, "checkout should clear the cart")

	found, foundItems, err := queries.FindOrderById(c, order.ID)
	require.NoError(t, err)
	assert.True(t, found.Total.Equal(order.Total))
	require.Len(t, foundItems, 2)

	orders, err := queries.FindOrders(c)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.EqualValues(t, order.ID, orders[0].ID)
}

func TestQueriesCreateOrderFromEmptyCart(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	_, _, err := queries.CreateOrderFromCart(c, "default")
	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)

	orders, err := queries.FindOrders(c)
	require.NoError(t, err)
	assert.Empty(t, orders, "failed checkout should not create an order")
}

func TestQueriesFindOrderByIdNotFound(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	_, _, err := queries.FindOrderById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}
