package adaptor

import (
	"errors"
	"net/http"

	"marine-booking/internal/usecase"
	"marine-booking/pkg/apperror"
	"marine-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Listing *ListingHandler
	Booking *BookingHandler
	Review  *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Listing: NewListingHandler(service.Listing, log),
		Booking: NewBookingHandler(service.Booking, log),
		Review:  NewReviewHandler(service.Review, log),
	}
}

// writeServiceError maps the typed service errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Kind {
	case apperror.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, appErr.Message)
	case apperror.KindValidation:
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, appErr.Message, nil)
	case apperror.KindInvalidTransition:
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseConflict(w, appErr.Message)
	case apperror.KindStore:
		log.Error(operation+" failed - record store", zap.Error(err))
		utils.ResponseBadGateway(w, appErr.Message)
	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
