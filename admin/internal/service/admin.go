package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/readify/shop/admin/internal/otel"
	"github.com/readify/shop/admin/pkg/request"
	"github.com/readify/shop/admin/pkg/response"
	inErrors "github.com/readify/shop/internal/errors"
	"github.com/readify/shop/internal/log"
	inOtel "github.com/readify/shop/internal/otel"
	"github.com/readify/shop/internal/repository"
	"github.com/readify/shop/internal/token"
)

const recentOrderLimit = 10

type AdminService struct {
	pool      *pgxpool.Pool
	queries   *repository.Queries
	secretKey string
}

func NewAdminService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	secretKey string,
) AdminService {
	return AdminService{pool: pool, queries: queries, secretKey: secretKey}
}

func (svc AdminService) Login(
	c context.Context,
	param request.Login,
) (response.Login, error) {
	c, span := otel.Tracer.Start(c, "AdminService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminService Login").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding admin by email").Logger()
	logger.Trace().Msg("finding admin by email")
	admin, err := svc.queries.FindAdminByEmail(c, param.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("admin not found")
			return response.Login{}, inErrors.ErrAdminNotFound
		}
		err = fmt.Errorf("failed finding admin by email with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Login{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("found admin by email")

	logger = logger.With().Str(log.KeyProcess, "comparing password").Logger()
	logger.Trace().Msg("comparing password")
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(param.Password)); err != nil {
		logger.Info().Msg("password mismatch")
		return response.Login{}, inErrors.ErrPasswordMismatch
	}
	logger.Trace().Msg("compared password")

	logger = logger.With().Str(log.KeyProcess, "creating token").Logger()
	logger.Trace().Msg("creating token")
	tokenString, err := token.Create(admin.ID, svc.secretKey)
	if err != nil {
		err = fmt.Errorf("failed creating token with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Login{}, err
	}
	logger.Info().Msg("created token")

	return response.Login{Token: tokenString}, nil
}

func (svc AdminService) DashboardStats(c context.Context) (response.Stats, error) {
	c, span := otel.Tracer.Start(c, "AdminService DashboardStats")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminService DashboardStats").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting dashboard stats").Logger()
	logger.Trace().Msg("getting dashboard stats")
	stats, err := svc.queries.GetDashboardStats(c)
	if err != nil {
		err = fmt.Errorf("failed getting dashboard stats with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Stats{}, inErrors.ClassifyStoreError(err)
	}
	logger = logger.With().Any(log.KeySummary, stats).Logger()
	logger.Info().Msg("got dashboard stats")

	return stats.Response(), nil
}

func (svc AdminService) RecentOrders(c context.Context) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "AdminService RecentOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminService RecentOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding recent orders").Logger()
	logger.Trace().Msg("finding recent orders")
	orders, err := svc.queries.FindRecentOrders(c, recentOrderLimit)
	if err != nil {
		err = fmt.Errorf("failed finding recent orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("found recent orders")

	items := make([]response.Order, 0, len(orders))
	for _, order := range orders {
		items = append(items, order.Response())
	}
	return items, nil
}

func (svc AdminService) UpdateOrderStatus(
	c context.Context,
	id uuid.UUID,
	param request.UpdateOrderStatus,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "AdminService UpdateOrderStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminService UpdateOrderStatus").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyOrderStatus, param.Status).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating order status").Logger()
	logger.Info().Msg("updating order status")
	order, err := svc.queries.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:     id,
		Status: param.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("order not found")
			return response.Order{}, inErrors.ErrOrderNotFound
		}
		err = fmt.Errorf("failed updating order status with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, inErrors.ClassifyStoreError(err)
	}
	logger.Info().Msg("updated order status")

	return order.Response(), nil
}
