package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
	"github.com/minimartlabs/minimart/internal/repository"
	"github.com/minimartlabs/minimart/order/internal/cache"
	"github.com/minimartlabs/minimart/order/internal/otel"
	"github.com/minimartlabs/minimart/order/pkg/response"
)

type OrderService struct {
	store repository.Store
	cache *redis.Client
}

func NewOrderService(store repository.Store, cache *redis.Client) OrderService {
	return OrderService{store: store, cache: cache}
}

// Checkout converts the cart into an order and clears the cart. The store
// does both in one transaction so the order always matches the charged total.
func (svc OrderService) Checkout(c context.Context, cartID string) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "OrderService Checkout").
		Str(log.KeyCartID, cartID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "creating order from cart").Logger()
	logger.Trace().Msg("creating order from cart")
	span.AddEvent("creating order from cart")
	order, orderItems, err := svc.store.CreateOrderFromCart(c, cartID)
	if err != nil {
		err = fmt.Errorf("failed creating order from cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	span.AddEvent("created order from cart")
	logger = logger.With().
		Str(log.KeyOrderID, order.ID.String()).
		Int(log.KeyOrderItems, len(orderItems)).
		Logger()
	logger.Info().Msg("created order from cart")

	cacheKey := cache.KeyCart + cartID
	logger = logger.With().
		Str(log.KeyProcess, "removing cart from cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()
	logger.Trace().Msg("removing cart from cache")
	span.AddEvent("removing cart from cache")
	if err := svc.cache.Del(c, cacheKey).Err(); err != nil {
		err = fmt.Errorf("failed removing cart from cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	} else {
		span.AddEvent("removed cart from cache")
		logger.Info().Msg("removed cart from cache")
	}

	return order.Response(orderItems), nil
}

func (svc OrderService) GetOrders(c context.Context) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService GetOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "OrderService GetOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding orders in database").Logger()
	logger.Trace().Msg("finding orders in database")
	span.AddEvent("finding orders in database")
	ordersDb, err := svc.store.FindOrders(c)
	if err != nil {
		err = fmt.Errorf("failed finding orders in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	span.AddEvent("found orders in database")
	logger = logger.With().Int(log.KeyOrders, len(ordersDb)).Logger()
	logger.Info().Msg("found orders in database")

	orders := make([]response.Order, len(ordersDb))
	for i, order := range ordersDb {
		orders[i] = order.Response(nil)
	}
	return orders, nil
}

func (svc OrderService) FindOrderById(c context.Context, id uuid.UUID) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order in database").Logger()
	logger.Trace().Msg("finding order in database")
	span.AddEvent("finding order in database")
	order, orderItems, err := svc.store.FindOrderById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding order in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	span.AddEvent("found order in database")
	logger = logger.With().Int(log.KeyOrderItems, len(orderItems)).Logger()
	logger.Info().Msg("found order in database")

	return order.Response(orderItems), nil
}
