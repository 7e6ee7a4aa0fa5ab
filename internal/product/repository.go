package product

import (
	"context"
	"strings"
	"time"

	"pilmart-be/internal/store"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, int, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, in CreateInput) (*Product, error)
	Update(ctx context.Context, id int, in UpdateInput) (*Product, error)
	Deactivate(ctx context.Context, id int) error
	ToggleStock(ctx context.Context, id int) (int, error)
	DecrementStock(ctx context.Context, deductions []Deduction) error
}

type repository struct {
	products *store.Collection[Product]
}

func NewRepository(products *store.Collection[Product]) Repository {
	return &repository{products: products}
}

// List filters the collection in storage order and returns the requested
// page plus the total count of the filtered set. Limit 0 disables paging.
func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, int, error) {
	products, err := r.products.Load()
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if !opts.IncludeInactive && !bool(p.IsActive) {
			continue
		}
		if opts.CategoryID != nil && p.CategoryID != *opts.CategoryID {
			continue
		}
		if opts.Search != "" && !strings.Contains(p.Name, opts.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	if opts.Limit <= 0 {
		return filtered, total, nil
	}

	offset := (opts.Page - 1) * opts.Limit
	if offset >= total {
		return []Product{}, total, nil
	}
	end := offset + opts.Limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	products, err := r.products.Load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *repository) Create(ctx context.Context, in CreateInput) (*Product, error) {
	var created Product

	err := r.products.Update(func(products []Product) ([]Product, error) {
		maxID := 0
		for _, p := range products {
			if p.ID > maxID {
				maxID = p.ID
			}
		}

		imageURL := in.ImageURL
		if imageURL == "" {
			imageURL = DefaultImageURL
		}

		created = Product{
			ID:          maxID + 1,
			Name:        in.Name,
			Price:       in.Price,
			CategoryID:  in.CategoryID,
			Description: in.Description,
			ImageURL:    imageURL,
			Stock:       in.Stock,
			IsActive:    true,
			CreatedAt:   time.Now().UTC(),
		}
		return append(products, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) Update(ctx context.Context, id int, in UpdateInput) (*Product, error) {
	var updated Product

	err := r.products.Update(func(products []Product) ([]Product, error) {
		i := indexOf(products, id)
		if i < 0 {
			return nil, ErrProductNotFound
		}

		p := &products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.CategoryID != nil {
			p.CategoryID = *in.CategoryID
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.ImageURL != nil {
			p.ImageURL = *in.ImageURL
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.IsActive != nil {
			p.IsActive = Flag(*in.IsActive)
		}

		updated = *p
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Deactivate soft-deletes a product; the record stays on file.
func (r *repository) Deactivate(ctx context.Context, id int) error {
	return r.products.Update(func(products []Product) ([]Product, error) {
		i := indexOf(products, id)
		if i < 0 {
			return nil, ErrProductNotFound
		}
		products[i].IsActive = false
		return products, nil
	})
}

// ToggleStock zeroes stock when any is left, otherwise restocks to the default.
func (r *repository) ToggleStock(ctx context.Context, id int) (int, error) {
	var stock int

	err := r.products.Update(func(products []Product) ([]Product, error) {
		i := indexOf(products, id)
		if i < 0 {
			return nil, ErrProductNotFound
		}
		if products[i].Stock > 0 {
			products[i].Stock = 0
		} else {
			products[i].Stock = RestockAmount
		}
		stock = products[i].Stock
		return products, nil
	})
	if err != nil {
		return 0, err
	}
	return stock, nil
}

// DecrementStock applies order deductions in one write. A line whose product
// is missing or whose stock is short is skipped without error.
func (r *repository) DecrementStock(ctx context.Context, deductions []Deduction) error {
	return r.products.Update(func(products []Product) ([]Product, error) {
		for _, d := range deductions {
			i := indexOf(products, d.ProductID)
			if i < 0 {
				continue
			}
			if products[i].Stock >= d.Quantity {
				products[i].Stock -= d.Quantity
			}
		}
		return products, nil
	})
}

func indexOf(products []Product, id int) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
