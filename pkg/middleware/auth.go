package middleware

import (
	"net/http"
	"strings"

	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"go.uber.org/zap"
)

// AuthGuest validates the guest session token and puts the order id on the
// request context. Every guest route is scoped to exactly one order.
func AuthGuest(sessionRepo repository.GuestSessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token. Websocket clients cannot set headers, so the
			// token may also travel as a query parameter.
			var token string
			authHeader := r.Header.Get("Authorization")
			switch {
			case authHeader != "":
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
					return
				}
				token = parts[1]
			case r.URL.Query().Get("token") != "":
				token = r.URL.Query().Get("token")
			default:
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate guest session",
					zap.String("token", token),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired guest session", zap.String("token", token))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetOrderContext(r.Context(), session.OrderID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
