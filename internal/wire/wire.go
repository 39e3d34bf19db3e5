package wire

import (
	"net/http"

	"marine-booking/internal/adaptor"
	"marine-booking/internal/data/repository"
	"marine-booking/internal/usecase"
	"marine-booking/pkg/auth"
	"marine-booking/pkg/middleware"
	"marine-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)
	verifier := auth.NewJWTVerifier(config.JWT.Secret)

	router := setupRouter(handler, verifier, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, verifier auth.Verifier, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireListing(r, handler.Listing, handler.Review)
	wireBooking(r, handler.Booking, verifier, logger)
	wireReview(r, handler.Review, verifier, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
