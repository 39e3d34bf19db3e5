package usecase

import (
	"context"

	"marine-booking/internal/data/entity"
	"marine-booking/internal/data/repository"
	"marine-booking/pkg/apperror"
	"marine-booking/pkg/store"
	"marine-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Listing ListingService
	Booking BookingService
	Review  ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Listing: NewListingService(repo, log),
		Booking: NewBookingService(repo, log),
		Review:  NewReviewService(repo, log),
	}
}

// resolveListing maps a caller-facing listing reference to the listing
// record. References that already look like internal identifiers pass
// through a direct lookup; everything else is treated as an external code.
func resolveListing(ctx context.Context, repo repository.ListingRepository, ref string) (*entity.Listing, error) {
	var (
		listing *entity.Listing
		err     error
	)

	if store.IsRecordID(ref) {
		listing, err = repo.FindByID(ctx, ref)
	} else {
		listing, err = repo.FindByCode(ctx, ref)
	}

	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}
	if listing == nil {
		return nil, apperror.NotFound("listing " + ref + " not found")
	}

	return listing, nil
}
