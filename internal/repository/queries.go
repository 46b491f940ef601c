package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	inErrors "github.com/minimartlabs/minimart/internal/errors"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Queries is the Postgres implementation of Store.
type Queries struct {
	db   DBTX
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Queries {
	return &Queries{db: pool, pool: pool}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:              d.Coefficient(),
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		NaN:              false,
		Valid:            true,
	}
}

func decimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

const insertProduct = `
INSERT INTO products (id, name, description, price)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, price, created_at
`

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(c, insertProduct,
		uuid.New(),
		arg.Name,
		arg.Description,
		numericFromDecimal(arg.Price),
	)
	var p Product
	var price pgtype.Numeric
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.CreatedAt)
	if err != nil {
		return Product{}, fmt.Errorf("failed inserting product with error=%w", err)
	}
	p.Price = decimalFromNumeric(price)
	return p, nil
}

const findProducts = `
SELECT id, name, description, price, created_at
FROM products
ORDER BY created_at, id
`

func (q *Queries) FindProducts(c context.Context) ([]Product, error) {
	rows, err := q.db.Query(c, findProducts)
	if err != nil {
		return nil, fmt.Errorf("failed finding products with error=%w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		var price pgtype.Numeric
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &price, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed scanning product with error=%w", err)
		}
		p.Price = decimalFromNumeric(price)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating products with error=%w", err)
	}
	return products, nil
}

const findProductById = `
SELECT id, name, description, price, created_at
FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	var p Product
	var price pgtype.Numeric
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, inErrors.ErrProductNotFound
		}
		return Product{}, fmt.Errorf("failed finding product by id with error=%w", err)
	}
	p.Price = decimalFromNumeric(price)
	return p, nil
}

const insertCartItem = `
INSERT INTO cart_items (id, cart_id, product_id, quantity)
VALUES ($1, $2, $3, $4)
RETURNING id, cart_id, product_id, quantity, created_at
`

func (q *Queries) InsertCartItem(c context.Context, arg InsertCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(c, insertCartItem,
		uuid.New(),
		arg.CartID,
		arg.ProductID,
		arg.Quantity,
	)
	var item CartItem
	err := row.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return CartItem{}, inErrors.ErrProductNotFound
		}
		return CartItem{}, fmt.Errorf("failed inserting cart item with error=%w", err)
	}
	return item, nil
}

const findCartItems = `
SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, p.name, p.price
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at, ci.id
`

func (q *Queries) FindCartItems(c context.Context, cartID string) ([]CartItemDetail, error) {
	rows, err := q.db.Query(c, findCartItems, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed finding cart items with error=%w", err)
	}
	defer rows.Close()

	items := []CartItemDetail{}
	for rows.Next() {
		var d CartItemDetail
		var price pgtype.Numeric
		err := rows.Scan(
			&d.ID,
			&d.CartID,
			&d.ProductID,
			&d.Quantity,
			&d.CreatedAt,
			&d.ProductName,
			&price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed scanning cart item with error=%w", err)
		}
		d.UnitPrice = decimalFromNumeric(price)
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating cart items with error=%w", err)
	}
	return items, nil
}

const findCartItemsForUpdate = `
SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, p.name, p.price
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at, ci.id
FOR UPDATE OF ci
`

const insertOrder = `
INSERT INTO orders (id, total)
VALUES ($1, $2)
RETURNING id, total, created_at
`

const insertOrderItem = `
INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)
`

const deleteCartItems = `
DELETE FROM cart_items
WHERE cart_id = $1
`

// CreateOrderFromCart snapshots the cart rows, writes the order and its line
// items, and clears the cart in a single transaction so a concurrent add can
// neither be lost nor double-charged.
func (q *Queries) CreateOrderFromCart(
	c context.Context,
	cartID string,
) (order Order, orderItems []OrderItem, err error) {
	tx, err := q.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed initializing transaction with error=%w", err)
	}
	defer func() {
		rollbackErr := tx.Rollback(c)
		if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("failed rolling back transaction with error=%w", rollbackErr))
		}
	}()

	rows, err := tx.Query(c, findCartItemsForUpdate, cartID)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed snapshotting cart with error=%w", err)
	}
	items := []CartItemDetail{}
	for rows.Next() {
		var d CartItemDetail
		var price pgtype.Numeric
		err := rows.Scan(
			&d.ID,
			&d.CartID,
			&d.ProductID,
			&d.Quantity,
			&d.CreatedAt,
			&d.ProductName,
			&price,
		)
		if err != nil {
			rows.Close()
			return Order{}, nil, fmt.Errorf("failed scanning cart item with error=%w", err)
		}
		d.UnitPrice = decimalFromNumeric(price)
		items = append(items, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Order{}, nil, fmt.Errorf("failed iterating cart items with error=%w", err)
	}
	if len(items) == 0 {
		return Order{}, nil, inErrors.ErrEmptyCart
	}

	total := CartTotal(items)

	row := tx.QueryRow(c, insertOrder, uuid.New(), numericFromDecimal(total))
	var orderTotal pgtype.Numeric
	err = row.Scan(&order.ID, &orderTotal, &order.CreatedAt)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed inserting order with error=%w", err)
	}
	order.Total = decimalFromNumeric(orderTotal)

	orderItems = make([]OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		_, err = tx.Exec(c, insertOrderItem,
			orderItems[i].ID,
			orderItems[i].OrderID,
			orderItems[i].ProductID,
			orderItems[i].Quantity,
			numericFromDecimal(orderItems[i].UnitPrice),
		)
		if err != nil {
			return Order{}, nil, fmt.Errorf("failed inserting order item with error=%w", err)
		}
	}

	_, err = tx.Exec(c, deleteCartItems, cartID)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed clearing cart with error=%w", err)
	}

	err = tx.Commit(c)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed committing transaction with error=%w", err)
	}

	return order, orderItems, nil
}

const findOrders = `
SELECT id, total, created_at
FROM orders
ORDER BY created_at DESC, id
`

func (q *Queries) FindOrders(c context.Context) ([]Order, error) {
	rows, err := q.db.Query(c, findOrders)
	if err != nil {
		return nil, fmt.Errorf("failed finding orders with error=%w", err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		var total pgtype.Numeric
		err := rows.Scan(&o.ID, &total, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed scanning order with error=%w", err)
		}
		o.Total = decimalFromNumeric(total)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating orders with error=%w", err)
	}
	return orders, nil
}

const findOrderById = `
SELECT id, total, created_at
FROM orders
WHERE id = $1
`

const findOrderItemsByOrderId = `
SELECT id, order_id, product_id, quantity, unit_price
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) FindOrderById(c context.Context, id uuid.UUID) (Order, []OrderItem, error) {
	row := q.db.QueryRow(c, findOrderById, id)
	var order Order
	var total pgtype.Numeric
	err := row.Scan(&order.ID, &total, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, nil, inErrors.ErrOrderNotFound
		}
		return Order{}, nil, fmt.Errorf("failed finding order by id with error=%w", err)
	}
	order.Total = decimalFromNumeric(total)

	rows, err := q.db.Query(c, findOrderItemsByOrderId, id)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed finding order items with error=%w", err)
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var item OrderItem
		var unitPrice pgtype.Numeric
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &unitPrice)
		if err != nil {
			return Order{}, nil, fmt.Errorf("failed scanning order item with error=%w", err)
		}
		item.UnitPrice = decimalFromNumeric(unitPrice)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return Order{}, nil, fmt.Errorf("failed iterating order items with error=%w", err)
	}
	return order, items, nil
}

func (q *Queries) Ping(c context.Context) error {
	if q.pool == nil {
		return nil
	}
	if err := q.pool.Ping(c); err != nil {
		return fmt.Errorf("%w: %w", inErrors.ErrStoreUnavailable, err)
	}
	return nil
}
