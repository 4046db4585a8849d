// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/vladHotelverse/hotel-upsell/internal/adaptor"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/middleware"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface plus the realtime machinery the server
// owns for its lifetime.
type App struct {
	Router *chi.Mux
	Hub    *realtime.Hub
	Bridge *realtime.Bridge
}

// Wiring initializes services, handlers and the realtime fanout.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	labels *utils.Labels,
	listener *realtime.Listener,
	logger *zap.Logger,
) *App {
	hub := realtime.NewHub(logger)
	broadcaster := realtime.NewBroadcaster()
	bridge := realtime.NewBridge(broadcaster, listener, logger)

	service := usecase.NewService(
		repo,
		config,
		labels,
		newHubNotifier(hub),
		broadcaster,
		newActiveRoomEmitter(hub),
		logger,
	)
	realtimeHandler := adaptor.NewRealtimeHandler(hub, bridge, logger)
	handler := adaptor.NewHandler(service, realtimeHandler, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
		Hub:    hub,
		Bridge: bridge,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireSession(r, handler.Session)
	wireOrder(r, handler.Order, repo, logger)
	wireBid(r, handler.Bid, repo, logger)
	wireProposal(r, handler.Proposal, repo, config, logger)
	wireRealtime(r, handler.Realtime, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
