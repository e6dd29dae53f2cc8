package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/readify/shop/cart/internal/otel"
	"github.com/readify/shop/cart/pkg/request"
	"github.com/readify/shop/cart/pkg/response"
	inErrors "github.com/readify/shop/internal/errors"
	"github.com/readify/shop/internal/log"
	inOtel "github.com/readify/shop/internal/otel"
	"github.com/readify/shop/internal/repository"
)

type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	timeout time.Duration
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	timeout time.Duration,
) CartService {
	return CartService{pool: pool, queries: queries, timeout: timeout}
}

// AddCartItem consolidates the incoming quantity into the session's line
// item for the product. The whole lookup-or-increment happens in a single
// atomic upsert, so two concurrent adds for the same (session, product) pair
// can never produce a duplicate row or a lost update.
func (svc CartService) AddCartItem(
	c context.Context,
	param request.AddCartItem,
) (response.AddCartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeySessionID, param.SessionID).
		Str(log.KeyProductName, param.ProductName).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "upserting cart item").Logger()
	logger.Info().Msg("upserting cart item")
	c, cancel := context.WithTimeout(c, svc.timeout)
	defer cancel()
	row, err := svc.queries.UpsertCartItem(c, repository.UpsertCartItemParams{
		ID:          uuid.New(),
		SessionID:   param.SessionID,
		ProductName: param.ProductName,
		Price:       repository.NumericFromDecimal(param.Price),
		Quantity:    param.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("failed upserting cart item with error=%w", inErrors.ClassifyStoreError(err))
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.AddCartItem{}, err
	}

	action := response.ActionUpdated
	if row.Inserted {
		action = response.ActionAdded
	}
	logger = logger.With().
		Str(log.KeyCartItemID, row.ID.String()).
		Str(log.KeyAction, action).
		Logger()
	logger.Info().Msgf("upserted cart item with action=%s", action)

	return response.AddCartItem{CartId: row.ID, Action: action}, nil
}

// GetCart returns the session's line items newest-touched first with totals
// computed fresh from the rows; nothing is cached between calls.
func (svc CartService) GetCart(
	c context.Context,
	param request.GetCart,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService GetCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService GetCart").
		Str(log.KeySessionID, param.SessionID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	c, cancel := context.WithTimeout(c, svc.timeout)
	defer cancel()
	items, err := svc.queries.FindCartItemsBySessionId(c, param.SessionID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", inErrors.ClassifyStoreError(err))
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.EmptyCart(), err
	}
	logger.Info().Msgf("found %d cart items", len(items))

	cartItems := make([]response.CartItem, len(items))
	for i, item := range items {
		cartItems[i] = item.Response()
	}
	cart := response.NewCart(cartItems)
	logger.Info().Any(log.KeySummary, cart.Summary).Msg("computed cart summary")

	return cart, nil
}
