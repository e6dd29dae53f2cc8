// Package client is the storefront's view of a shopping cart. It owns the
// session token and never trusts its own arithmetic: after every successful
// mutation it re-queries the cart endpoint and adopts the server's totals.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/readify/shop/cart/pkg/response"
	"github.com/readify/shop/internal/log"
)

type Storefront struct {
	baseURL    string
	httpClient *http.Client
	session    session

	mu   sync.RWMutex
	cart response.Cart
}

type Option func(*Storefront)

// WithHTTPClient replaces the default instrumented client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Storefront) { s.httpClient = httpClient }
}

func NewStorefront(baseURL, sessionPath string, opts ...Option) (*Storefront, error) {
	sess, err := loadOrCreateSession(sessionPath, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed loading session with error=%w", err)
	}

	storefront := &Storefront{
		baseURL:    baseURL,
		httpClient: otelhttp.DefaultClient,
		session:    sess,
		cart:       response.EmptyCart(),
	}
	for _, opt := range opts {
		opt(storefront)
	}
	return storefront, nil
}

func (s *Storefront) SessionID() string {
	return s.session.Token
}

// Cart returns the last snapshot fetched from the server.
func (s *Storefront) Cart() response.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

type addCartItemEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CartId  string `json:"cart_id"`
	Action  string `json:"action"`
}

type getCartEnvelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	CartItems []response.CartItem `json:"cart_items"`
	Summary   response.Summary    `json:"summary"`
}

// AddToCart posts the item and then refreshes the local snapshot from the
// retrieval endpoint, so the snapshot always reflects server-side
// consolidation rather than an optimistic local guess.
func (s *Storefront) AddToCart(
	c context.Context,
	productName string,
	price decimal.Decimal,
	quantity int32,
) (response.AddCartItem, error) {
	body, err := json.Marshal(map[string]interface{}{
		"product_name": productName,
		"price":        price,
		"quantity":     quantity,
		"session_id":   s.session.Token,
	})
	if err != nil {
		return response.AddCartItem{}, fmt.Errorf(
			"failed marshalling cart item with error=%w",
			err,
		)
	}

	req, err := http.NewRequestWithContext(
		c,
		http.MethodPost,
		s.baseURL+"/carts/items",
		bytes.NewReader(body),
	)
	if err != nil {
		return response.AddCartItem{}, fmt.Errorf("failed creating request with error=%w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(log.KeyRequestIDHeader, log.RequestIDFromContext(c))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return response.AddCartItem{}, fmt.Errorf("failed adding item to cart with error=%w", err)
	}
	defer resp.Body.Close()

	envelope := addCartItemEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return response.AddCartItem{}, fmt.Errorf("failed decoding response with error=%w", err)
	}
	if !envelope.Success {
		return response.AddCartItem{}, fmt.Errorf(
			"cart rejected item with message=%s",
			envelope.Message,
		)
	}

	if err := s.Refresh(c); err != nil {
		return response.AddCartItem{}, err
	}

	result := response.AddCartItem{Action: envelope.Action}
	if id, err := uuid.Parse(envelope.CartId); err == nil {
		result.CartId = id
	}
	return result, nil
}

// Refresh replaces the local snapshot with the server's current cart.
func (s *Storefront) Refresh(c context.Context) error {
	req, err := http.NewRequestWithContext(
		c,
		http.MethodGet,
		s.baseURL+"/carts?session_id="+url.QueryEscape(s.session.Token),
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed creating request with error=%w", err)
	}
	req.Header.Set(log.KeyRequestIDHeader, log.RequestIDFromContext(c))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed getting cart with error=%w", err)
	}
	defer resp.Body.Close()

	envelope := getCartEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed decoding cart with error=%w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("failed getting cart with message=%s", envelope.Message)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if envelope.CartItems == nil {
		envelope.CartItems = []response.CartItem{}
	}
	s.cart = response.Cart{CartItems: envelope.CartItems, Summary: envelope.Summary}
	return nil
}
