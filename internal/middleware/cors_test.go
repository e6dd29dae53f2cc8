package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestCorsPreflight(t *testing.T) {
	handler := Cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the router")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/carts/items", nil)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusOK, recorder.Code)
	assert.EqualValues(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.EqualValues(t, http.MethodPost, recorder.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(t, recorder.Body.String())
}

func TestCorsAdvertisesRequestMethod(t *testing.T) {
	handler := Cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusOK, recorder.Code)
	assert.EqualValues(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.EqualValues(t, http.MethodGet, recorder.Header().Get("Access-Control-Allow-Methods"))
}

func TestMethodNotAllowed(t *testing.T) {
	router := mux.NewRouter()
	router.MethodNotAllowedHandler = MethodNotAllowed()
	router.HandleFunc("/carts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodDelete, "/carts", nil)
	recorder := httptest.NewRecorder()

	Cors(router).ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.JSONEq(
		t,
		`{"success":false,"message":"Method not allowed"}`,
		recorder.Body.String(),
	)
}
