package seed

import (
	"fmt"
	"os"
	"time"

	"pilmart-be/internal/category"
	"pilmart-be/internal/logger"
	"pilmart-be/internal/order"
	"pilmart-be/internal/product"
	"pilmart-be/internal/store"
	"pilmart-be/internal/user"

	"go.uber.org/zap"
)

// Ensure creates the data directory and writes each collection file that is
// missing. Existing files are never touched, so re-running is safe.
func Ensure(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := ensureCollection(store.NewCollection[category.Category](dataDir, "categories"), defaultCategories()); err != nil {
		return err
	}
	if err := ensureCollection(store.NewCollection[product.Product](dataDir, "products"), defaultProducts()); err != nil {
		return err
	}
	if err := ensureCollection(store.NewCollection[user.User](dataDir, "users"), nil); err != nil {
		return err
	}
	if err := ensureCollection(store.NewCollection[order.Order](dataDir, "orders"), nil); err != nil {
		return err
	}

	return nil
}

func ensureCollection[T any](c *store.Collection[T], defaults []T) error {
	if c.Exists() {
		return nil
	}
	if err := c.Save(defaults); err != nil {
		return fmt.Errorf("seed %s: %w", c.Path(), err)
	}
	logger.L().Info("seeded collection", zap.String("path", c.Path()), zap.Int("count", len(defaults)))
	return nil
}

func defaultCategories() []category.Category {
	return []category.Category{
		{ID: 1, Name: "Fruit", Icon: "🍎", SortOrder: 1},
		{ID: 2, Name: "Vegetables", Icon: "🥬", SortOrder: 2},
		{ID: 3, Name: "Grains & Pantry", Icon: "🌾", SortOrder: 3},
	}
}

func defaultProducts() []product.Product {
	now := time.Now().UTC()
	p := func(id int, name string, price, categoryID, stock int, desc string) product.Product {
		return product.Product{
			ID:          id,
			Name:        name,
			Price:       price,
			CategoryID:  categoryID,
			Description: desc,
			ImageURL:    product.DefaultImageURL,
			Stock:       stock,
			IsActive:    true,
			CreatedAt:   now,
		}
	}
	return []product.Product{
		p(1, "Fuji Apples 1kg", 6900, 1, 50, "Crisp and sweet, 4 to 5 apples per bag"),
		p(2, "Shine Muscat Grapes 700g", 12900, 1, 30, "Seedless green grapes"),
		p(3, "Bananas 1 bunch", 3900, 1, 60, "Sweet ripe bananas"),
		p(4, "Mandarins 2kg", 9900, 1, 40, "Jeju mandarins"),
		p(5, "Napa Cabbage 1 head", 4500, 2, 25, "For kimchi or soup"),
		p(6, "Spinach 300g", 2900, 2, 35, "Locally grown bundle"),
		p(7, "Cherry Tomatoes 500g", 5900, 2, 45, "Snacking tomatoes"),
		p(8, "Green Onions 1 bunch", 1900, 2, 50, "Fresh scallions"),
		p(9, "White Rice 10kg", 29900, 3, 20, "New harvest short grain"),
		p(10, "Brown Rice 4kg", 18900, 3, 15, "Unpolished whole grain"),
		p(11, "Dried Seaweed 50 sheets", 8900, 3, 30, "Roasted laver for gimbap"),
		p(12, "Sesame Oil 320ml", 11900, 3, 18, "Cold pressed"),
	}
}
