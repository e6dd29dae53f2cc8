package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/readify/shop/internal/errors"
	inHttp "github.com/readify/shop/internal/http"
	"github.com/readify/shop/internal/log"
	"github.com/readify/shop/internal/token"
)

func AdminAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware AdminAuth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				logger.Error().Err(inErrors.ErrEmptyAuth).Msg(inErrors.ErrEmptyAuth.Error())
				inHttp.WriteJsonResponse(c, w, nil, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": inErrors.ErrEmptyAuth.Error(),
				})
				return
			}

			bearer := strings.TrimPrefix(authorization, "Bearer ")
			if _, err := token.Verify(bearer, secret); err != nil {
				logger.Error().Err(err).Msg(err.Error())
				inHttp.WriteJsonResponse(c, w, nil, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": inErrors.ErrTokenInvalid.Error(),
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}
