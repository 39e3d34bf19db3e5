package repository

import (
	"context"

	"marine-booking/internal/data/entity"
	"marine-booking/pkg/store"

	"go.uber.org/zap"
)

const destinationCollection = "destinations"

type DestinationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Destination, error)
}

type destinationRepository struct {
	st         store.Store
	fetchLimit int
	log        *zap.Logger
}

func NewDestinationRepository(st store.Store, fetchLimit int, log *zap.Logger) DestinationRepository {
	return &destinationRepository{
		st:         st,
		fetchLimit: fetchLimit,
		log:        log.With(zap.String("repository", "destination")),
	}
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]*entity.Destination, error) {
	q := store.Query{
		Sort:       &store.Sort{Field: "name", Direction: "asc"},
		MaxRecords: r.fetchLimit,
	}

	records, err := r.st.Select(ctx, destinationCollection, q)
	if err != nil {
		r.log.Warn("Destination query degraded to empty result", zap.Error(err))
		return []*entity.Destination{}, nil
	}

	destinations := make([]*entity.Destination, len(records))
	for i, rec := range records {
		destinations[i] = &entity.Destination{
			ID:          rec.ID,
			Name:        rec.String("name"),
			Country:     rec.String("country"),
			Description: rec.String("description"),
		}
	}

	return destinations, nil
}
