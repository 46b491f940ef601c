package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minimartlabs/minimart/cart/internal/cache"
	"github.com/minimartlabs/minimart/cart/internal/otel"
	"github.com/minimartlabs/minimart/cart/pkg/request"
	"github.com/minimartlabs/minimart/cart/pkg/response"
	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
	"github.com/minimartlabs/minimart/internal/repository"
)

type CartService struct {
	store repository.Store
	cache *redis.Client
}

func NewCartService(store repository.Store, cache *redis.Client) CartService {
	return CartService{store: store, cache: cache}
}

// AddCartItem appends a new row to the cart. Repeated adds of the same
// product stay as separate lines so each add remains visible in the summary.
func (svc CartService) AddCartItem(
	c context.Context,
	cartID string,
	param request.AddCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeyCartID, cartID).
		Str(log.KeyProductID, param.ProductID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Trace().Msg("finding product in database")
	span.AddEvent("finding product in database")
	if _, err := svc.store.FindProductById(c, param.ProductID); err != nil {
		err = fmt.Errorf("failed finding product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	span.AddEvent("found product in database")
	logger.Info().Msg("found product in database")

	logger = logger.With().Str(log.KeyProcess, "inserting cart item to database").Logger()
	logger.Trace().Msg("inserting cart item to database")
	span.AddEvent("inserting cart item to database")
	_, err := svc.store.InsertCartItem(c, repository.InsertCartItemParams{
		CartID:    cartID,
		ProductID: param.ProductID,
		Quantity:  param.ItemQuantity(),
	})
	if err != nil {
		err = fmt.Errorf("failed inserting cart item to database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	span.AddEvent("inserted cart item to database")
	logger.Info().Msg("inserted cart item to database")

	svc.removeCartFromCache(c, cartID)

	return svc.cartSummary(c, cartID)
}

func (svc CartService) GetCart(c context.Context, cartID string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService GetCart")
	defer span.End()

	cacheKey := cache.KeyCart + cartID
	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "CartService GetCart").
		Str(log.KeyCartID, cartID).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart in cache").Logger()
	logger.Trace().Msg("finding cart in cache")
	jsonCache, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		span.AddEvent("found cart in cache")
		logger = logger.With().Str(log.KeyJsonCache, jsonCache).Logger()
		logger.Debug().Msg("found cart in cache")

		cart := response.Cart{}
		err := json.Unmarshal([]byte(jsonCache), &cart)
		if err == nil {
			logger.Info().Msg("found cart in cache")
			return cart, nil
		}
		err = fmt.Errorf("failed unmarshalling jsonCache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}

	c = logger.WithContext(c)
	cart, err := svc.cartSummary(c, cartID)
	if err != nil {
		return response.Cart{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "inserting cart to cache").Logger()
	logger.Trace().Msg("inserting cart to cache")
	span.AddEvent("inserting cart to cache")
	jsonCart, err := json.Marshal(cart)
	if err == nil {
		err = svc.cache.Set(c, cacheKey, jsonCart, time.Hour).Err()
	}
	if err != nil {
		err = fmt.Errorf("failed inserting cart to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart, nil
	}
	span.AddEvent("inserted cart to cache")
	logger.Info().Msg("inserted cart to cache")

	return cart, nil
}

func (svc CartService) cartSummary(c context.Context, cartID string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService cartSummary")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "CartService cartSummary").
		Str(log.KeyCartID, cartID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items in database").Logger()
	logger.Trace().Msg("finding cart items in database")
	span.AddEvent("finding cart items in database")
	items, err := svc.store.FindCartItems(c, cartID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	span.AddEvent("found cart items in database")
	logger = logger.With().
		Int(log.KeyCartItems, len(items)).
		Str(log.KeyCartTotal, repository.CartTotal(items).String()).
		Logger()
	logger.Info().Msg("found cart items in database")

	return repository.CartResponse(cartID, items), nil
}

func (svc CartService) removeCartFromCache(c context.Context, cartID string) {
	c, span := otel.Tracer.Start(c, "CartService removeCartFromCache")
	defer span.End()

	cacheKey := cache.KeyCart + cartID
	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "CartService removeCartFromCache").
		Str(log.KeyProcess, "removing cart from cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger.Trace().Msg("removing cart from cache")
	span.AddEvent("removing cart from cache")
	if err := svc.cache.Del(c, cacheKey).Err(); err != nil {
		err = fmt.Errorf("failed removing cart from cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	span.AddEvent("removed cart from cache")
	logger.Info().Msg("removed cart from cache")
}
