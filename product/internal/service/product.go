package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	inErrors "github.com/readify/shop/internal/errors"
	"github.com/readify/shop/internal/log"
	inOtel "github.com/readify/shop/internal/otel"
	"github.com/readify/shop/internal/repository"
	"github.com/readify/shop/product/internal/cache"
	"github.com/readify/shop/product/internal/otel"
	"github.com/readify/shop/product/pkg/request"
	"github.com/readify/shop/product/pkg/response"
)

const cacheTTL = time.Hour

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) ProductService {
	return ProductService{pool: pool, queries: queries, cache: cache}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Str(log.KeyProductName, param.Name).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Trace().Msg("inserting product to database")
	product, err := svc.queries.InsertProduct(c, repository.InsertProductParams{
		ID:          uuid.New(),
		Name:        param.Name,
		Description: textOf(param.Description),
		Price:       repository.NumericFromDecimal(param.Price),
		Category:    textOf(param.Category),
		ImageUrl:    textOf(param.ImageUrl),
		Stock:       param.Stock,
		Status:      param.Status,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting product to database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("inserted product to database")

	svc.setCache(c, product.Response())
	return product.Response(), nil
}

func (svc ProductService) FindProducts(
	c context.Context,
	param request.FindProducts,
) (response.Products, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Trace().Msg("finding products in database")
	products, err := svc.queries.FindProducts(c, repository.FindProductsParams{
		Search:   param.Search,
		Category: param.Category,
		Limit:    param.Limit,
		Offset:   (param.Page - 1) * param.Limit,
	})
	if err != nil {
		err = fmt.Errorf("failed finding products in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Products{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("found products in database")

	logger = logger.With().Str(log.KeyProcess, "counting products in database").Logger()
	logger.Trace().Msg("counting products in database")
	total, err := svc.queries.CountProducts(c, repository.CountProductsParams{
		Search:   param.Search,
		Category: param.Category,
	})
	if err != nil {
		err = fmt.Errorf("failed counting products in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Products{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("counted products in database")

	items := make([]response.Product, 0, len(products))
	for _, product := range products {
		items = append(items, product.Response())
	}
	return response.NewProducts(items, param.Page, param.Limit, total), nil
}

func (svc ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := cache.KeyProducts + id.String()
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Trace().Msg("finding product in cache")
	jsonCache, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		product := response.Product{}
		if err := json.Unmarshal([]byte(jsonCache), &product); err != nil {
			err = fmt.Errorf("failed unmarshalling cached product with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		} else {
			logger.Debug().Msg("found product in cache")
			return product, nil
		}
	} else if err != nil && !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding product in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Trace().Msg("finding product in database")
	product, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return response.Product{}, inErrors.ErrProductNotFound
		}
		err = fmt.Errorf("failed finding product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("found product in database")

	svc.setCache(c, product.Response())
	return product.Response(), nil
}

func (svc ProductService) UpdateProduct(
	c context.Context,
	id uuid.UUID,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService UpdateProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating product in database").Logger()
	logger.Trace().Msg("updating product in database")
	product, err := svc.queries.UpdateProduct(c, repository.UpdateProductParams{
		ID:          id,
		Name:        param.Name,
		Description: textOf(param.Description),
		Price:       repository.NumericFromDecimal(param.Price),
		Category:    textOf(param.Category),
		ImageUrl:    textOf(param.ImageUrl),
		Stock:       param.Stock,
		Status:      param.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return response.Product{}, inErrors.ErrProductNotFound
		}
		err = fmt.Errorf("failed updating product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("updated product in database")

	svc.setCache(c, product.Response())
	return product.Response(), nil
}

func (svc ProductService) RemoveProduct(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "ProductService RemoveProduct")
	defer span.End()

	cacheKey := cache.KeyProducts + id.String()
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService RemoveProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting product from database").Logger()
	logger.Trace().Msg("deleting product from database")
	deleted, err := svc.queries.DeleteProduct(c, id)
	if err != nil {
		err = fmt.Errorf("failed deleting product from database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return inErrors.ClassifyStoreError(err)
	}
	if deleted == 0 {
		return inErrors.ErrProductNotFound
	}
	logger.Info().Msg("deleted product from database")

	logger = logger.With().Str(log.KeyProcess, "deleting product from cache").Logger()
	logger.Trace().Msg("deleting product from cache")
	if err := svc.cache.Del(c, cacheKey).Err(); err != nil {
		err = fmt.Errorf("failed deleting product from cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("deleted product from cache")

	return nil
}

// setCache is best effort. A stale or missed cache entry only costs the next
// reader a database round trip.
func (svc ProductService) setCache(c context.Context, product response.Product) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyProcess, "inserting product to cache").
		Str(log.KeyCacheKey, cache.KeyProducts+product.ID.String()).
		Logger()

	body, err := json.Marshal(product)
	if err != nil {
		logger.Error().Err(err).Msg("failed marshalling product for cache")
		return
	}
	if err := svc.cache.Set(c, cache.KeyProducts+product.ID.String(), body, cacheTTL).Err(); err != nil {
		logger.Error().Err(err).Msg("failed inserting product to cache")
		return
	}
	logger.Trace().Msg("inserted product to cache")
}

func textOf(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
