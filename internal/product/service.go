package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"pilmart-be/internal/category"
	"pilmart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id int) (*WithCategory, error)
	AdminList(ctx context.Context, search string) ([]WithCategory, error)
	Create(ctx context.Context, in CreateInput) (*Product, error)
	Update(ctx context.Context, id int, in UpdateInput) (*Product, error)
	Deactivate(ctx context.Context, id int) error
	ToggleStock(ctx context.Context, id int) (int, error)
}

type service struct {
	repo       Repository
	categories category.Repository
}

func NewService(repo Repository, categories category.Repository) Service {
	return &service{repo: repo, categories: categories}
}

// List returns the storefront catalog page: active products only, filtered
// by category and name substring, enriched with category names.
func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	start := time.Now()

	// ---------- INPUT NORMALIZATION ----------

	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	} else if opts.Limit > 100 {
		opts.Limit = 100
	}
	opts.IncludeInactive = false

	// ---------- FETCH DATA ----------

	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		log.Error("failed to load product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	items, err := s.enrich(ctx, products)
	if err != nil {
		return nil, err
	}

	log.Info("product list loaded",
		zap.Int("count", len(items)),
		zap.Int("total", total),
		zap.Int("page", opts.Page),
		zap.Int("limit", opts.Limit),
		zap.Duration("duration", time.Since(start)),
	)

	return &ListResult{
		Items: items,
		Total: total,
		Page:  opts.Page,
		Limit: opts.Limit,
	}, nil
}

// GetByID returns a single product, active or not.
func (s *service) GetByID(ctx context.Context, id int) (*WithCategory, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.enrich(ctx, []Product{*p})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// AdminList returns every product, including soft-deleted ones, unpaginated.
func (s *service) AdminList(ctx context.Context, search string) ([]WithCategory, error) {
	products, _, err := s.repo.List(ctx, ListOptions{
		Search:          search,
		IncludeInactive: true,
	})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, products)
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("name", in.Name),
	)

	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name cannot be empty")
	}
	if in.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if in.Stock < 0 {
		in.Stock = 0
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Int("product_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, id int, in UpdateInput) (*Product, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, errors.New("name cannot be empty")
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}
	if !hasAnyUpdateField(in) {
		return nil, errors.New("no fields to update")
	}

	return s.repo.Update(ctx, id, in)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Deactivate"),
		zap.Int("product_id", id),
	)

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.Error("failed to deactivate product", zap.Error(err))
		return err
	}

	log.Info("product deactivated")
	return nil
}

func (s *service) ToggleStock(ctx context.Context, id int) (int, error) {
	stock, err := s.repo.ToggleStock(ctx, id)
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("product stock toggled",
		zap.String("layer", "service"),
		zap.Int("product_id", id),
		zap.Int("stock", stock),
	)
	return stock, nil
}

// enrich joins category names onto products; a missing category yields "".
func (s *service) enrich(ctx context.Context, products []Product) ([]WithCategory, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := category.NameIndex(categories)

	items := make([]WithCategory, 0, len(products))
	for _, p := range products {
		items = append(items, WithCategory{Product: p, CategoryName: names[p.CategoryID]})
	}
	return items, nil
}

func hasAnyUpdateField(in UpdateInput) bool {
	return in.Name != nil ||
		in.Price != nil ||
		in.CategoryID != nil ||
		in.Description != nil ||
		in.ImageURL != nil ||
		in.Stock != nil ||
		in.IsActive != nil
}
