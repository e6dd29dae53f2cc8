package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/readify/shop/cart/internal/otel"
	"github.com/readify/shop/cart/internal/service"
	"github.com/readify/shop/cart/pkg/request"
	"github.com/readify/shop/cart/pkg/response"
	inErrors "github.com/readify/shop/internal/errors"
	inHttp "github.com/readify/shop/internal/http"
	"github.com/readify/shop/internal/log"
	inOtel "github.com/readify/shop/internal/otel"
	"github.com/readify/shop/internal/validate"
)

type CartController struct {
	service *service.CartService
}

func AttachCartController(router *mux.Router, service *service.CartService) {
	controller := CartController{service: service}

	r := router.PathPrefix("/carts").Subrouter()
	r.HandleFunc("/items", controller.AddCartItem).Methods(http.MethodPost)
	r.HandleFunc("", controller.GetCart).Methods(http.MethodGet)
}

func (t CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController AddCartItem").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.AddCartItem{Quantity: 1}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, nil, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": inErrors.ErrValidation.Error(),
		})
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
		inHttp.WriteJsonResponse(c, w, nil, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": inErrors.ErrValidation.Error(),
		})
		return
	}
	logger.Trace().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	c = logger.WithContext(c)
	result, err := t.service.AddCartItem(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, nil, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": messageFromError(err),
		})
		return
	}
	logger.Info().Msg("added cart item")

	message := "Item added to cart successfully"
	if result.Action == response.ActionUpdated {
		message = "Item quantity updated successfully"
	}
	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
		"cart_id": result.CartId,
		"action":  result.Action,
	})
}

func (t CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController GetCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController GetCart").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating session id").Logger()
	logger.Trace().Msg("validating session id")
	reqQuery := request.GetCart{SessionID: r.URL.Query().Get("session_id")}.Normalized()
	if err := validate.Get().StructCtx(c, reqQuery); err != nil {
		err = fmt.Errorf("failed validating session id with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeCartFailure(c, w, "Session ID is required")
		return
	}
	logger.Trace().Msg("validated session id")

	logger = logger.With().
		Str(log.KeyProcess, "getting cart").
		Str(log.KeySessionID, reqQuery.SessionID).
		Logger()
	logger.Info().Msg("getting cart")
	c = logger.WithContext(c)
	cart, err := t.service.GetCart(c, reqQuery)
	if err != nil {
		err = fmt.Errorf("failed getting cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeCartFailure(c, w, messageFromError(err))
		return
	}
	logger.Info().Msg("got cart")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success":    true,
		"cart_items": cart.CartItems,
		"summary":    cart.Summary,
	})
}

// writeCartFailure mirrors the success shape with empty items and a zeroed
// summary so clients can always read the same fields.
func writeCartFailure(c context.Context, w http.ResponseWriter, message string) {
	empty := response.EmptyCart()
	inHttp.WriteJsonResponse(c, w, nil, http.StatusBadRequest, map[string]interface{}{
		"success":    false,
		"message":    message,
		"cart_items": empty.CartItems,
		"summary":    empty.Summary,
	})
}

// messageFromError keeps internal wrap chains out of client responses.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, inErrors.ErrStorageUnavailable):
		return inErrors.ErrStorageUnavailable.Error()
	case errors.Is(err, inErrors.ErrWriteFailed):
		return "Failed to update cart"
	default:
		return "Failed to process request"
	}
}
