package category

import (
	"context"
	"sort"

	"pilmart-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the read-only catalog surface for categories.
type Service interface {
	GetCategories(ctx context.Context) ([]Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetCategories returns all categories ordered by their configured sort order.
func (s *service) GetCategories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategories"),
	)

	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to load categories", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	log.Debug("categories loaded", zap.Int("count", len(categories)))
	return categories, nil
}

// NameIndex maps category ids to names for enriching product records.
func NameIndex(categories []Category) map[int]string {
	idx := make(map[int]string, len(categories))
	for _, c := range categories {
		idx[c.ID] = c.Name
	}
	return idx
}
