package repository

import (
	"context"

	"marine-booking/internal/data/entity"
	"marine-booking/pkg/store"

	"go.uber.org/zap"
)

const categoryCollection = "categories"

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type categoryRepository struct {
	st         store.Store
	fetchLimit int
	log        *zap.Logger
}

func NewCategoryRepository(st store.Store, fetchLimit int, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		st:         st,
		fetchLimit: fetchLimit,
		log:        log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	q := store.Query{
		Sort:       &store.Sort{Field: "name", Direction: "asc"},
		MaxRecords: r.fetchLimit,
	}

	records, err := r.st.Select(ctx, categoryCollection, q)
	if err != nil {
		r.log.Warn("Category query degraded to empty result", zap.Error(err))
		return []*entity.Category{}, nil
	}

	categories := make([]*entity.Category, len(records))
	for i, rec := range records {
		categories[i] = &entity.Category{
			ID:          rec.ID,
			Name:        rec.String("name"),
			Description: rec.String("description"),
		}
	}

	return categories, nil
}
