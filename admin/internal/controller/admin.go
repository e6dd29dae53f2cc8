package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/readify/shop/admin/internal/otel"
	"github.com/readify/shop/admin/internal/service"
	"github.com/readify/shop/admin/pkg/request"
	inErrors "github.com/readify/shop/internal/errors"
	inHttp "github.com/readify/shop/internal/http"
	"github.com/readify/shop/internal/log"
	"github.com/readify/shop/internal/middleware"
	inOtel "github.com/readify/shop/internal/otel"
	"github.com/readify/shop/internal/validate"
)

type AdminController struct {
	service *service.AdminService
}

func AttachAdminController(
	router *mux.Router,
	service *service.AdminService,
	secretKey string,
) {
	controller := AdminController{service: service}

	r := router.PathPrefix("/admin").Subrouter()
	r.HandleFunc("/login", controller.Login).Methods(http.MethodPost)

	authed := router.PathPrefix("/admin").Subrouter()
	authed.Use(middleware.AdminAuth(secretKey))
	authed.HandleFunc("/stats", controller.DashboardStats).Methods(http.MethodGet)
	authed.HandleFunc("/orders/recent", controller.RecentOrders).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{orderId}/status", controller.UpdateOrderStatus).
		Methods(http.MethodPut)
}

func (a AdminController) Login(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "AdminController Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminController Login").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.Login{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}
	reqBody = reqBody.Normalized()
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Trace().Msg("validating request body")
	if err := validate.Get().StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}
	logger.Trace().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "logging in").
		Str(log.KeyEmail, reqBody.Email).
		Logger()
	logger.Info().Msg("logging in")
	c = logger.WithContext(c)
	login, err := a.service.Login(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed logging in with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrAdminNotFound) ||
			errors.Is(err, inErrors.ErrPasswordMismatch) {
			writeFailure(c, w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeFailure(c, w, http.StatusBadRequest, "Failed to log in")
		return
	}
	logger.Info().Msg("logged in")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged in successfully",
		"token":   login.Token,
	})
}

func (a AdminController) DashboardStats(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "AdminController DashboardStats")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminController DashboardStats").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting dashboard stats").Logger()
	logger.Info().Msg("getting dashboard stats")
	c = logger.WithContext(c)
	stats, err := a.service.DashboardStats(c)
	if err != nil {
		err = fmt.Errorf("failed getting dashboard stats with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Failed to load stats")
		return
	}
	logger.Info().Msg("got dashboard stats")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}

func (a AdminController) RecentOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "AdminController RecentOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminController RecentOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting recent orders").Logger()
	logger.Info().Msg("getting recent orders")
	c = logger.WithContext(c)
	orders, err := a.service.RecentOrders(c)
	if err != nil {
		err = fmt.Errorf("failed getting recent orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Failed to load orders")
		return
	}
	logger.Info().Msg("got recent orders")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

func (a AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "AdminController UpdateOrderStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AdminController UpdateOrderStatus").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing order id").Logger()
	logger.Trace().Msg("parsing order id")
	id, err := uuid.Parse(mux.Vars(r)["orderId"])
	if err != nil {
		err = fmt.Errorf("failed parsing order id with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Invalid order id")
		return
	}
	logger.Trace().Msg("parsed order id")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.UpdateOrderStatus{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}
	reqBody = reqBody.Normalized()
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Trace().Msg("validating request body")
	if err := validate.Get().StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}
	logger.Trace().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "updating order status").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyOrderStatus, reqBody.Status).
		Logger()
	logger.Info().Msg("updating order status")
	c = logger.WithContext(c)
	order, err := a.service.UpdateOrderStatus(c, id, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating order status with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrOrderNotFound) {
			writeFailure(c, w, http.StatusNotFound, "Order not found")
			return
		}
		writeFailure(c, w, http.StatusBadRequest, "Failed to update order status")
		return
	}
	logger.Info().Msg("updated order status")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"order":   order,
	})
}

func writeFailure(c context.Context, w http.ResponseWriter, statusCode int, message string) {
	inHttp.WriteJsonResponse(c, w, nil, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
