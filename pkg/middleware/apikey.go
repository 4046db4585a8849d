package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"go.uber.org/zap"
)

// HotelAPIKey guards hotel-side routes with a shared key in X-API-Key. An
// empty configured key disables the surface entirely.
func HotelAPIKey(key string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				logger.Warn("Hotel API key not configured, rejecting request",
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Hotel API disabled")
				return
			}

			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				logger.Warn("Invalid hotel API key", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
