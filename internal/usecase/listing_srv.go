package usecase

import (
	"context"

	"marine-booking/internal/data/repository"
	"marine-booking/internal/dto/request"
	"marine-booking/internal/dto/response"
	"marine-booking/pkg/apperror"
	"marine-booking/pkg/utils"

	"go.uber.org/zap"
)

type ListingService interface {
	GetListings(ctx context.Context, req *request.ListingFilterRequest) (*response.PaginatedResponse[response.ListingResponse], error)
	GetListingByCode(ctx context.Context, code string) (*response.ListingResponse, error)
	GetDestinations(ctx context.Context) ([]response.DestinationResponse, error)
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
}

type listingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewListingService(repo *repository.Repository, log *zap.Logger) ListingService {
	return &listingService{
		repo: repo,
		log:  log.With(zap.String("service", "listing")),
	}
}

func (s *listingService) GetListings(ctx context.Context, req *request.ListingFilterRequest) (*response.PaginatedResponse[response.ListingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Listing filter validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(utils.FormatValidationErrors(errs))
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.Limit()

	filter := repository.ListingFilter{
		Category: req.Category,
		Location: req.Location,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Featured: req.Featured,
	}

	listings, total, err := s.repo.Listing.List(ctx, filter, page, perPage)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	listingResponses := make([]response.ListingResponse, len(listings))
	for i, listing := range listings {
		listingResponses[i] = response.ListingToResponse(listing)
	}

	s.log.Info("Listings retrieved",
		zap.Int("count", len(listings)),
		zap.Int("total", total),
		zap.Int("page", page),
	)

	return response.NewPaginatedResponse(listingResponses, page, perPage, int64(total)), nil
}

func (s *listingService) GetListingByCode(ctx context.Context, code string) (*response.ListingResponse, error) {
	listing, err := resolveListing(ctx, s.repo.Listing, code)
	if err != nil {
		return nil, err
	}

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

func (s *listingService) GetDestinations(ctx context.Context) ([]response.DestinationResponse, error) {
	destinations, err := s.repo.Destination.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	out := make([]response.DestinationResponse, len(destinations))
	for i, d := range destinations {
		out[i] = response.DestinationToResponse(d)
	}

	return out, nil
}

func (s *listingService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store("record store unavailable", err)
	}

	out := make([]response.CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = response.CategoryToResponse(c)
	}

	return out, nil
}
