package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
	"github.com/minimartlabs/minimart/internal/repository"
	"github.com/minimartlabs/minimart/product/internal/cache"
	"github.com/minimartlabs/minimart/product/internal/otel"
	"github.com/minimartlabs/minimart/product/pkg/request"
	"github.com/minimartlabs/minimart/product/pkg/response"
)

type ProductService struct {
	store repository.Store
	cache *redis.Client
}

func NewProductService(store repository.Store, cache *redis.Client) ProductService {
	return ProductService{store: store, cache: cache}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Trace().Msg("inserting product to database")
	span.AddEvent("inserting product to database")
	product, err := svc.store.InsertProduct(c, repository.InsertProductParams{
		Name:        param.Name,
		Description: param.Description,
		Price:       param.Price,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting product to database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("inserted product to database")
	logger = logger.With().Any(log.KeyProduct, product).Logger()
	logger.Info().Msg("inserted product to database")

	logger = logger.With().
		Str(log.KeyProcess, "removing products from cache").
		Str(log.KeyCacheKey, cache.KeyProducts).
		Logger()
	logger.Trace().Msg("removing products from cache")
	span.AddEvent("removing products from cache")
	err = svc.cache.Del(c, cache.KeyProducts).Err()
	if err != nil {
		err = fmt.Errorf("failed removing products from cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	span.AddEvent("removed products from cache")
	logger.Info().Msg("removed products from cache")

	return product.Response(), nil
}

func (svc ProductService) GetProducts(c context.Context) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService GetProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService GetProducts").
		Str(log.KeyCacheKey, cache.KeyProducts).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in cache").Logger()
	logger.Trace().Msg("finding products in cache")
	jsonCache, err := svc.cache.Get(c, cache.KeyProducts).Result()
	if err == nil && jsonCache != "" {
		span.AddEvent("found products in cache")
		logger = logger.With().Str(log.KeyJsonCache, jsonCache).Logger()
		logger.Debug().Msg("found products in cache")

		products := []response.Product{}
		err := json.Unmarshal([]byte(jsonCache), &products)
		if err == nil {
			logger.Info().Msg("found products in cache")
			return products, nil
		}
		err = fmt.Errorf("failed unmarshalling jsonCache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Trace().Msg("finding products in database")
	span.AddEvent("finding products in database")
	productsDb, err := svc.store.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed finding products in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	span.AddEvent("found products in database")
	logger.Info().Msg("found products in database")

	products := make([]response.Product, len(productsDb))
	for i, product := range productsDb {
		products[i] = product.Response()
	}

	logger = logger.With().Str(log.KeyProcess, "inserting products to cache").Logger()
	logger.Trace().Msg("inserting products to cache")
	span.AddEvent("inserting products to cache")
	jsonProducts, err := json.Marshal(products)
	if err == nil {
		err = svc.cache.Set(c, cache.KeyProducts, jsonProducts, time.Hour).Err()
	}
	if err != nil {
		err = fmt.Errorf("failed inserting products to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return products, nil
	}
	span.AddEvent("inserted products to cache")
	logger.Info().Msg("inserted products to cache")

	return products, nil
}

func (svc ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := cache.KeyProduct + id.String()
	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Trace().Msg("finding product in cache")
	jsonCache, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		span.AddEvent("found product in cache")
		logger = logger.With().Str(log.KeyJsonCache, jsonCache).Logger()
		logger.Debug().Msg("found product in cache")

		product := response.Product{}
		err := json.Unmarshal([]byte(jsonCache), &product)
		if err == nil {
			logger.Info().Msg("found product in cache")
			return product, nil
		}
		err = fmt.Errorf("failed unmarshalling jsonCache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Trace().Msg("finding product in database")
	span.AddEvent("finding product in database")
	productDb, err := svc.store.FindProductById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("found product in database")
	logger = logger.With().Any(log.KeyProduct, productDb).Logger()
	logger.Info().Msg("found product in database")

	product := productDb.Response()

	logger = logger.With().Str(log.KeyProcess, "inserting product to cache").Logger()
	logger.Trace().Msg("inserting product to cache")
	span.AddEvent("inserting product to cache")
	jsonProduct, err := json.Marshal(product)
	if err == nil {
		err = svc.cache.Set(c, cacheKey, jsonProduct, time.Hour).Err()
	}
	if err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return product, nil
	}
	span.AddEvent("inserted product to cache")
	logger.Info().Msg("inserted product to cache")

	return product, nil
}
