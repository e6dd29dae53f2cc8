package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/readify/shop/cart/pkg/request"
	"github.com/readify/shop/cart/pkg/response"
)

func TestAddCartItemConsolidation(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	first, err := cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Kaos Premium Cotton",
		Price:       decimal.NewFromInt(149000),
		Quantity:    1,
		SessionID:   "session_one",
	})
	assert.NoError(t, err)
	assert.EqualValues(t, response.ActionAdded, first.Action)

	second, err := cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Kaos Premium Cotton",
		Price:       decimal.NewFromInt(149000),
		Quantity:    2,
		SessionID:   "session_one",
	})
	assert.NoError(t, err)
	assert.EqualValues(t, response.ActionUpdated, second.Action)
	assert.EqualValues(t, first.CartId, second.CartId)

	cart, err := cartService.GetCart(c, request.GetCart{SessionID: "session_one"})
	assert.NoError(t, err)
	assert.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, int32(3), cart.CartItems[0].Quantity)
	assert.EqualValues(t, int32(3), cart.Summary.TotalItems)
	assert.EqualValues(t, 1, cart.Summary.ItemCount)
	assert.True(t, decimal.NewFromInt(447000).Equal(cart.Summary.TotalPrice))
}

func TestAddCartItemFirstPriceWins(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	_, err := cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Headphone Wireless",
		Price:       decimal.NewFromInt(499000),
		Quantity:    1,
		SessionID:   "session_one",
	})
	assert.NoError(t, err)

	_, err = cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Headphone Wireless",
		Price:       decimal.NewFromInt(1),
		Quantity:    1,
		SessionID:   "session_one",
	})
	assert.NoError(t, err)

	cart, err := cartService.GetCart(c, request.GetCart{SessionID: "session_one"})
	assert.NoError(t, err)
	assert.Len(t, cart.CartItems, 1)
	assert.True(t, decimal.NewFromInt(499000).Equal(cart.CartItems[0].Price))
	assert.True(t, decimal.NewFromInt(998000).Equal(cart.Summary.TotalPrice))
}

func TestAddCartItemSessionsAreIsolated(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	one, err := cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Smartphone Terbaru",
		Price:       decimal.NewFromInt(2999000),
		Quantity:    1,
		SessionID:   "session_one",
	})
	assert.NoError(t, err)
	assert.EqualValues(t, response.ActionAdded, one.Action)

	two, err := cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Smartphone Terbaru",
		Price:       decimal.NewFromInt(2999000),
		Quantity:    1,
		SessionID:   "session_two",
	})
	assert.NoError(t, err)
	assert.EqualValues(t, response.ActionAdded, two.Action)
	assert.NotEqualValues(t, one.CartId, two.CartId)
}

func TestConcurrentAddsNeverLoseQuantity(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	workers := 10
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := cartService.AddCartItem(c, request.AddCartItem{
				ProductName: "Sepatu Sport Premium",
				Price:       decimal.NewFromInt(899000),
				Quantity:    1,
				SessionID:   "session_one",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := cartService.GetCart(c, request.GetCart{SessionID: "session_one"})
	assert.NoError(t, err)
	assert.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, int32(workers), cart.CartItems[0].Quantity)
}

func TestGetCartEmptySession(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	cart, err := cartService.GetCart(c, request.GetCart{SessionID: "session_empty"})
	assert.NoError(t, err)
	assert.NotNil(t, cart.CartItems)
	assert.Empty(t, cart.CartItems)
	assert.EqualValues(t, int32(0), cart.Summary.TotalItems)
	assert.EqualValues(t, 0, cart.Summary.ItemCount)
	assert.True(t, decimal.Zero.Equal(cart.Summary.TotalPrice))
}

func TestGetCartOrdersByMostRecentlyUpdated(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, cartService := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	products := []string{"Kaos Premium Cotton", "Smartphone Terbaru", "Headphone Wireless"}
	for _, product := range products {
		_, err := cartService.AddCartItem(c, request.AddCartItem{
			ProductName: product,
			Price:       decimal.NewFromInt(100000),
			Quantity:    1,
			SessionID:   "session_one",
		})
		assert.NoError(t, err)
	}

	// Touch the oldest line again so it becomes the most recently updated.
	_, err := cartService.AddCartItem(c, request.AddCartItem{
		ProductName: "Kaos Premium Cotton",
		Price:       decimal.NewFromInt(100000),
		Quantity:    1,
		SessionID:   "session_one",
	})
	assert.NoError(t, err)

	cart, err := cartService.GetCart(c, request.GetCart{SessionID: "session_one"})
	assert.NoError(t, err)
	assert.Len(t, cart.CartItems, 3)
	assert.EqualValues(t, "Kaos Premium Cotton", cart.CartItems[0].ProductName)
}
