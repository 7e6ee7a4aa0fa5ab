package category

import (
	"context"

	"pilmart-be/internal/store"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Category, error)
}

type repository struct {
	categories *store.Collection[Category]
}

func NewRepository(categories *store.Collection[Category]) Repository {
	return &repository{categories: categories}
}

func (r *repository) GetAll(ctx context.Context) ([]Category, error) {
	return r.categories.Load()
}
