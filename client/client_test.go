package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSessionPersistsAcrossClients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := loadOrCreateSession(path, time.Now())
	assert.NoError(t, err)
	assert.Contains(t, first.Token, "session_")

	second, err := loadOrCreateSession(path, time.Now())
	assert.NoError(t, err)
	assert.EqualValues(t, first.Token, second.Token)
}

func TestSessionRotatesAfterExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	now := time.Now()

	first, err := loadOrCreateSession(path, now)
	assert.NoError(t, err)

	second, err := loadOrCreateSession(path, now.Add(sessionTTL+time.Hour))
	assert.NoError(t, err)
	assert.NotEqualValues(t, first.Token, second.Token)
}

func TestAddToCartRefreshesSnapshotFromServer(t *testing.T) {
	var addRequests, getRequests int
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/carts/items":
				addRequests++
				body := map[string]interface{}{}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.EqualValues(t, "Kaos Premium Cotton", body["product_name"])
				assert.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
					"success": true,
					"message": "Item added to cart successfully",
					"cart_id": "5f8e8e1e-9a4b-4a57-9f0e-0a4d3f1b2c3d",
					"action":  "added",
				}))
			case r.Method == http.MethodGet && r.URL.Path == "/carts":
				getRequests++
				assert.Contains(t, r.URL.Query().Get("session_id"), "session_")
				assert.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
					"success": true,
					"cart_items": []map[string]interface{}{
						{
							"id":           "5f8e8e1e-9a4b-4a57-9f0e-0a4d3f1b2c3d",
							"product_name": "Kaos Premium Cotton",
							"price":        "149000",
							"quantity":     3,
							"subtotal":     "447000",
						},
					},
					"summary": map[string]interface{}{
						"total_items": 3,
						"total_price": "447000",
						"item_count":  1,
					},
				}))
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}),
	)
	defer server.Close()

	storefront, err := NewStorefront(
		server.URL,
		filepath.Join(t.TempDir(), "session.json"),
		WithHTTPClient(server.Client()),
	)
	assert.NoError(t, err)

	result, err := storefront.AddToCart(
		context.Background(),
		"Kaos Premium Cotton",
		decimal.NewFromInt(149000),
		3,
	)
	assert.NoError(t, err)
	assert.EqualValues(t, "added", result.Action)
	assert.EqualValues(t, 1, addRequests)
	assert.EqualValues(t, 1, getRequests)

	cart := storefront.Cart()
	assert.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, int32(3), cart.Summary.TotalItems)
	assert.True(t, decimal.NewFromInt(447000).Equal(cart.Summary.TotalPrice))
}

func TestAddToCartRejectedByServer(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			assert.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Validation failed",
			}))
		}),
	)
	defer server.Close()

	storefront, err := NewStorefront(
		server.URL,
		filepath.Join(t.TempDir(), "session.json"),
		WithHTTPClient(server.Client()),
	)
	assert.NoError(t, err)

	_, err = storefront.AddToCart(context.Background(), "Kaos", decimal.Zero, 1)
	assert.Error(t, err)
	assert.Empty(t, storefront.Cart().CartItems)
}
