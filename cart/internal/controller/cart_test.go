package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// The routes below fail validation before touching storage, so a nil
// service is safe to attach.
func newRouter() *mux.Router {
	router := mux.NewRouter()
	AttachCartController(router, nil)
	return router
}

func TestGetCartWithoutSessionId(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	recorder := httptest.NewRecorder()

	newRouter().ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(
		t,
		`{
			"success": false,
			"message": "Session ID is required",
			"cart_items": [],
			"summary": {"total_items": 0, "total_price": "0", "item_count": 0}
		}`,
		recorder.Body.String(),
	)
}

func TestAddCartItemInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing product name", body: `{"price":"149000","session_id":"session_abc"}`},
		{name: "missing session id", body: `{"product_name":"Kaos","price":"149000"}`},
		{name: "zero price", body: `{"product_name":"Kaos","price":"0","session_id":"session_abc"}`},
		{name: "zero quantity", body: `{"product_name":"Kaos","price":"149000","quantity":0,"session_id":"session_abc"}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(
				http.MethodPost,
				"/carts/items",
				strings.NewReader(test.body),
			)
			recorder := httptest.NewRecorder()

			newRouter().ServeHTTP(recorder, req)

			assert.EqualValues(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"success":false`)
		})
	}
}
