package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	inErrors "github.com/minimartlabs/minimart/internal/errors"
)

// MemoryStore keeps the catalog, carts and orders in process memory. It
// preserves insertion order the same way the Postgres queries do.
type MemoryStore struct {
	mu         sync.Mutex
	products   []Product
	cartItems  []CartItem
	orders     []Order
	orderItems []OrderItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:   []Product{},
		cartItems:  []CartItem{},
		orders:     []Order{},
		orderItems: []OrderItem{},
	}
}

func (m *MemoryStore) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product := Product{
		ID:          uuid.New(),
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		CreatedAt:   time.Now(),
	}
	m.products = append(m.products, product)
	return product, nil
}

func (m *MemoryStore) FindProducts(c context.Context) ([]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := make([]Product, len(m.products))
	copy(products, m.products)
	return products, nil
}

func (m *MemoryStore) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.findProduct(id)
	if !ok {
		return Product{}, inErrors.ErrProductNotFound
	}
	return product, nil
}

func (m *MemoryStore) findProduct(id uuid.UUID) (Product, bool) {
	for _, product := range m.products {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}

func (m *MemoryStore) InsertCartItem(c context.Context, arg InsertCartItemParams) (CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.findProduct(arg.ProductID); !ok {
		return CartItem{}, inErrors.ErrProductNotFound
	}
	item := CartItem{
		ID:        uuid.New(),
		CartID:    arg.CartID,
		ProductID: arg.ProductID,
		Quantity:  arg.Quantity,
		CreatedAt: time.Now(),
	}
	m.cartItems = append(m.cartItems, item)
	return item, nil
}

func (m *MemoryStore) FindCartItems(c context.Context, cartID string) ([]CartItemDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cartItemDetails(cartID), nil
}

func (m *MemoryStore) cartItemDetails(cartID string) []CartItemDetail {
	details := []CartItemDetail{}
	for _, item := range m.cartItems {
		if item.CartID != cartID {
			continue
		}
		product, ok := m.findProduct(item.ProductID)
		if !ok {
			continue
		}
		details = append(details, CartItemDetail{
			CartItem:    item,
			ProductName: product.Name,
			UnitPrice:   product.Price,
		})
	}
	return details
}

func (m *MemoryStore) CreateOrderFromCart(
	c context.Context,
	cartID string,
) (Order, []OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	details := m.cartItemDetails(cartID)
	if len(details) == 0 {
		return Order{}, nil, inErrors.ErrEmptyCart
	}

	order := Order{
		ID:        uuid.New(),
		Total:     CartTotal(details),
		CreatedAt: time.Now(),
	}
	orderItems := make([]OrderItem, len(details))
	for i, detail := range details {
		orderItems[i] = OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
			UnitPrice: detail.UnitPrice,
		}
	}

	m.orders = append(m.orders, order)
	m.orderItems = append(m.orderItems, orderItems...)

	remaining := m.cartItems[:0]
	for _, item := range m.cartItems {
		if item.CartID != cartID {
			remaining = append(remaining, item)
		}
	}
	m.cartItems = remaining

	return order, orderItems, nil
}

func (m *MemoryStore) FindOrders(c context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := make([]Order, len(m.orders))
	copy(orders, m.orders)
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

func (m *MemoryStore) FindOrderById(c context.Context, id uuid.UUID) (Order, []OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, order := range m.orders {
		if order.ID != id {
			continue
		}
		items := []OrderItem{}
		for _, item := range m.orderItems {
			if item.OrderID == order.ID {
				items = append(items, item)
			}
		}
		return order, items, nil
	}
	return Order{}, nil, inErrors.ErrOrderNotFound
}

func (m *MemoryStore) Ping(c context.Context) error {
	return nil
}
