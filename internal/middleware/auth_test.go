package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/readify/shop/internal/token"
)

func newAuthedRouter(secret string) *mux.Router {
	router := mux.NewRouter()
	authed := router.PathPrefix("/admin").Subrouter()
	authed.Use(AdminAuth(secret))
	authed.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return router
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	router := newAuthedRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminAuthRejectsBadToken(t *testing.T) {
	router := newAuthedRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	router := newAuthedRouter("secret")

	signed, err := token.Create(uuid.New(), "secret")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.EqualValues(t, http.StatusOK, recorder.Code)
}
