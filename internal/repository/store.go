package repository

import (
	"context"

	"github.com/google/uuid"
)

// Store is the capability set the services need over the three entity kinds:
// create/read for products and orders, create/read/clear for cart items.
// Queries implements it over Postgres, MemoryStore in memory for tests.
type Store interface {
	InsertProduct(c context.Context, arg InsertProductParams) (Product, error)
	FindProducts(c context.Context) ([]Product, error)
	FindProductById(c context.Context, id uuid.UUID) (Product, error)

	InsertCartItem(c context.Context, arg InsertCartItemParams) (CartItem, error)
	FindCartItems(c context.Context, cartID string) ([]CartItemDetail, error)

	// CreateOrderFromCart snapshots the cart into an order with
	// price-at-purchase line items and clears the cart, atomically.
	// Returns ErrEmptyCart when the cart holds no items.
	CreateOrderFromCart(c context.Context, cartID string) (Order, []OrderItem, error)
	FindOrders(c context.Context) ([]Order, error)
	FindOrderById(c context.Context, id uuid.UUID) (Order, []OrderItem, error)

	Ping(c context.Context) error
}
