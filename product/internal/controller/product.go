package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/readify/shop/internal/errors"
	inHttp "github.com/readify/shop/internal/http"
	"github.com/readify/shop/internal/log"
	"github.com/readify/shop/internal/middleware"
	inOtel "github.com/readify/shop/internal/otel"
	"github.com/readify/shop/internal/validate"
	"github.com/readify/shop/product/internal/otel"
	"github.com/readify/shop/product/internal/service"
	"github.com/readify/shop/product/pkg/request"
)

type ProductController struct {
	service *service.ProductService
}

func AttachProductController(
	router *mux.Router,
	service *service.ProductService,
	secretKey string,
) {
	controller := ProductController{service: service}

	r := router.PathPrefix("/products").Subrouter()
	r.HandleFunc("", controller.FindProducts).Methods(http.MethodGet)
	r.HandleFunc("/{productId}", controller.FindProductById).Methods(http.MethodGet)

	authed := router.PathPrefix("/products").Subrouter()
	authed.Use(middleware.AdminAuth(secretKey))
	authed.HandleFunc("", controller.InsertProduct).Methods(http.MethodPost)
	authed.HandleFunc("/{productId}", controller.UpdateProduct).Methods(http.MethodPut)
	authed.HandleFunc("/{productId}", controller.RemoveProduct).Methods(http.MethodDelete)
}

func (p ProductController) InsertProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController InsertProduct").
		Logger()

	reqBody, err := decodeProduct(r)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}

	logger = logger.With().Str(log.KeyProcess, "inserting product").Logger()
	logger.Info().Msg("inserting product")
	c = logger.WithContext(c)
	product, err := p.service.InsertProduct(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Failed to create product")
		return
	}
	logger.Info().Msg("inserted product")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

func (p ProductController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating query params").Logger()
	logger.Trace().Msg("validating query params")
	reqQuery := request.FindProducts{
		Page:     queryInt32(r, "page"),
		Limit:    queryInt32(r, "limit"),
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}.Normalized()
	if err := validate.Get().StructCtx(c, reqQuery); err != nil {
		err = fmt.Errorf("failed validating query params with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}
	logger.Trace().Msg("validated query params")

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products, err := p.service.FindProducts(c, reqQuery)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Failed to load products")
		return
	}
	logger.Info().Msg("found products")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success":    true,
		"products":   products.Products,
		"pagination": products.Pagination,
	})
}

func (p ProductController) FindProductById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProductById").
		Logger()

	id, err := pathProductId(r)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Invalid product id")
		return
	}

	logger = logger.With().
		Str(log.KeyProcess, "finding product").
		Str(log.KeyProductID, id.String()).
		Logger()
	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	product, err := p.service.FindProductById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrProductNotFound) {
			writeFailure(c, w, http.StatusNotFound, "Product not found")
			return
		}
		writeFailure(c, w, http.StatusBadRequest, "Failed to load product")
		return
	}
	logger.Info().Msg("found product")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

func (p ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController UpdateProduct").
		Logger()

	id, err := pathProductId(r)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Invalid product id")
		return
	}

	reqBody, err := decodeProduct(r)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, inErrors.ErrValidation.Error())
		return
	}

	logger = logger.With().
		Str(log.KeyProcess, "updating product").
		Str(log.KeyProductID, id.String()).
		Logger()
	logger.Info().Msg("updating product")
	c = logger.WithContext(c)
	product, err := p.service.UpdateProduct(c, id, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrProductNotFound) {
			writeFailure(c, w, http.StatusNotFound, "Product not found")
			return
		}
		writeFailure(c, w, http.StatusBadRequest, "Failed to update product")
		return
	}
	logger.Info().Msg("updated product")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

func (p ProductController) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController RemoveProduct").
		Logger()

	id, err := pathProductId(r)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		writeFailure(c, w, http.StatusBadRequest, "Invalid product id")
		return
	}

	logger = logger.With().
		Str(log.KeyProcess, "removing product").
		Str(log.KeyProductID, id.String()).
		Logger()
	logger.Info().Msg("removing product")
	c = logger.WithContext(c)
	if err := p.service.RemoveProduct(c, id); err != nil {
		err = fmt.Errorf("failed removing product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrProductNotFound) {
			writeFailure(c, w, http.StatusNotFound, "Product not found")
			return
		}
		writeFailure(c, w, http.StatusBadRequest, "Failed to delete product")
		return
	}
	logger.Info().Msg("removed product")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func decodeProduct(r *http.Request) (request.Product, error) {
	reqBody := request.Product{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		return request.Product{}, fmt.Errorf("failed decoding request body with error=%w", err)
	}
	reqBody = reqBody.Normalized()
	if err := validate.Get().StructCtx(r.Context(), reqBody); err != nil {
		return request.Product{}, fmt.Errorf("failed validating request body with error=%w", err)
	}
	return reqBody, nil
}

func pathProductId(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed parsing product id with error=%w", err)
	}
	return id, nil
}

func queryInt32(r *http.Request, key string) int32 {
	value, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 32)
	if err != nil {
		return 0
	}
	return int32(value)
}

func writeFailure(c context.Context, w http.ResponseWriter, statusCode int, message string) {
	inHttp.WriteJsonResponse(c, w, nil, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
