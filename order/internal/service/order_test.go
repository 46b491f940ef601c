package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/minimartlabs/minimart/internal/errors"
	"github.com/minimartlabs/minimart/internal/repository"
	"github.com/minimartlabs/minimart/order/internal/cache"
)

func testContext() context.Context {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
}

func TestCheckout(t *testing.T) {
	c := testContext()
	redisClient, pool, pgContainer, redisContainer, queries, orderService := setup(t, c)
	defer teardown(t, redisClient, pool, pgContainer, redisContainer)

	apple, err := queries.InsertProduct(c, repository.InsertProductParams{
		Name:        "Apple",
		Description: "Crisp red apple",
		Price:       decimal.RequireFromString("1.50"),
	})
	require.NoError(t, err)

	_, err = queries.InsertCartItem(c, repository.InsertCartItemParams{
		CartID:    "default",
		ProductID: apple.ID,
		Quantity:  3,
	})
	require.NoError(t, err)

	err = redisClient.Set(c, cache.KeyCart+"default", "{}", time.Hour).Err()
	require.NoError(t, err)

	order, err := orderService.Checkout(c, "default")
	require.NoError(t, err)
	assert.True(
		t,
		order.Total.Equal(decimal.RequireFromString("4.50")),
		"order total should equal the sum of line totals",
	)
	require.Len(t, order.OrderItems, 1)
	assert.EqualValues(t, apple.ID, order.OrderItems[0].ProductID)
	assert.EqualValues(t, 3, order.OrderItems[0].Quantity)
	assert.True(t, order.OrderItems[0].UnitPrice.Equal(apple.Price))

	items, err := queries.FindCartItems(c, "default")
	require.NoError(t, err)
	assert.Empty(t, items, "checkout should clear the cart")

	err = redisClient.Get(c, cache.KeyCart+"default").Err()
	assert.ErrorIs(t, err, redis.Nil, "checkout should remove the cached cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := testContext()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t, c)
	defer teardown(t, redisClient, pool, pgContainer, redisContainer)

	_, err := orderService.Checkout(c, "default")
	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
}

func TestFindOrders(t *testing.T) {
	c := testContext()
	redisClient, pool, pgContainer, redisContainer, queries, orderService := setup(t, c)
	defer teardown(t, redisClient, pool, pgContainer, redisContainer)

	apple, err := queries.InsertProduct(c, repository.InsertProductParams{
		Name:        "Apple",
		Description: "Crisp red apple",
		Price:       decimal.RequireFromString("1.50"),
	})
	require.NoError(t, err)

	_, err = queries.InsertCartItem(c, repository.InsertCartItemParams{
		CartID:    "default",
		ProductID: apple.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	created, err := orderService.Checkout(c, "default")
	require.NoError(t, err)

	orders, err := orderService.GetOrders(c)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.EqualValues(t, created.ID, orders[0].ID)

	found, err := orderService.FindOrderById(c, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, created.ID, found.ID)
	require.Len(t, found.OrderItems, 1)

	_, err = orderService.FindOrderById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}
