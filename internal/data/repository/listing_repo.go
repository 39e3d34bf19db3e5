package repository

import (
	"context"
	"fmt"

	"marine-booking/internal/data/entity"
	"marine-booking/pkg/store"

	"go.uber.org/zap"
)

const listingCollection = "listings"

// ListingFilter describes the structured browse filters; each set field
// becomes one predicate.
type ListingFilter struct {
	Category string
	Location string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
}

type ListingRepository interface {
	// FindByCode resolves the external code. Absent code returns
	// (nil, nil), never an error.
	FindByCode(ctx context.Context, code string) (*entity.Listing, error)
	FindByID(ctx context.Context, id string) (*entity.Listing, error)
	// List returns one page plus the total number of fetched matches
	// (bounded by the configured fetch limit).
	List(ctx context.Context, filter ListingFilter, page, perPage int) ([]*entity.Listing, int, error)
}

type listingRepository struct {
	st         store.Store
	fetchLimit int
	log        *zap.Logger
}

func NewListingRepository(st store.Store, fetchLimit int, log *zap.Logger) ListingRepository {
	return &listingRepository{
		st:         st,
		fetchLimit: fetchLimit,
		log:        log.With(zap.String("repository", "listing")),
	}
}

func (r *listingRepository) FindByCode(ctx context.Context, code string) (*entity.Listing, error) {
	q := store.Query{
		Predicates: []store.Predicate{store.Equals("code", code)},
		MaxRecords: 1,
	}

	records, err := r.st.Select(ctx, listingCollection, q)
	if err != nil {
		r.log.Error("Failed to find listing by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find listing by code %s: %w", code, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return listingFromRecord(records[0]), nil
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	q := store.Query{
		Predicates: []store.Predicate{store.ByID(id)},
		MaxRecords: 1,
	}

	records, err := r.st.Select(ctx, listingCollection, q)
	if err != nil {
		r.log.Error("Failed to find listing by ID",
			zap.Error(err),
			zap.String("listing_id", id),
		)
		return nil, fmt.Errorf("find listing by ID %s: %w", id, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return listingFromRecord(records[0]), nil
}

func (r *listingRepository) List(ctx context.Context, filter ListingFilter, page, perPage int) ([]*entity.Listing, int, error) {
	var preds []store.Predicate
	if filter.Category != "" {
		preds = append(preds, store.Equals("category", filter.Category))
	}
	if filter.Location != "" {
		preds = append(preds, store.Equals("location", filter.Location))
	}
	if filter.MinPrice != nil {
		preds = append(preds, store.Range("price", ">=", *filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		preds = append(preds, store.Range("price", "<=", *filter.MaxPrice))
	}
	if filter.Featured != nil {
		preds = append(preds, store.Equals("featured", *filter.Featured))
	}

	q := store.Query{
		Predicates: preds,
		Sort:       &store.Sort{Field: "ratingScore", Direction: "desc"},
		MaxRecords: r.fetchLimit,
	}

	records, err := r.st.Select(ctx, listingCollection, q)
	if err != nil {
		// Browse pages keep rendering on store trouble; degrade to empty.
		r.log.Warn("Listing query degraded to empty result",
			zap.Error(err),
			zap.Int("page", page),
		)
		return []*entity.Listing{}, 0, nil
	}

	pageRecords := store.Paginate(records, page, perPage)

	listings := make([]*entity.Listing, len(pageRecords))
	for i, rec := range pageRecords {
		listings[i] = listingFromRecord(rec)
	}

	return listings, len(records), nil
}

// listingFromRecord decodes the raw attribute bag once, at the store
// boundary.
func listingFromRecord(rec store.Record) *entity.Listing {
	listing := &entity.Listing{
		ID:          rec.ID,
		Code:        rec.String("code"),
		Title:       rec.String("title"),
		Description: rec.String("description"),
		Location:    rec.String("location"),
		Category:    rec.String("category"),
		Price:       rec.Float("price"),
		Currency:    rec.String("currency"),
		RatingScore: rec.Float("ratingScore"),
		ReviewCount: rec.Int("reviewCount"),
		Featured:    rec.Bool("featured"),
		Duration:    rec.String("duration"),
	}

	for _, att := range rec.Attachments("photos") {
		listing.Photos = append(listing.Photos, entity.Photo{
			ID:       att.ID,
			URL:      att.URL,
			Filename: att.Filename,
		})
	}

	return listing
}
