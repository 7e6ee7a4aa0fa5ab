package main

import (
	"log"
	"net/http"

	"pilmart-be/internal/category"
	"pilmart-be/internal/config"
	"pilmart-be/internal/httpserver"
	"pilmart-be/internal/logger"
	"pilmart-be/internal/order"
	"pilmart-be/internal/product"
	"pilmart-be/internal/seed"
	"pilmart-be/internal/store"
	"pilmart-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := seed.Ensure(cfg.DataDir); err != nil {
		log.Fatalf("failed to prepare data dir: %v", err)
	}

	categoryRepo := category.NewRepository(store.NewCollection[category.Category](cfg.DataDir, "categories"))
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(store.NewCollection[product.Product](cfg.DataDir, "products"))
	productSvc := product.NewService(productRepo, categoryRepo)

	userRepo := user.NewRepository(store.NewCollection[user.User](cfg.DataDir, "users"))
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(store.NewCollection[order.Order](cfg.DataDir, "orders"))
	orderSvc := order.NewService(orderRepo, productRepo)

	router := httpserver.NewRouter(
		httpserver.NewAuthHandler(userSvc),
		httpserver.NewCatalogHandler(categorySvc, productSvc),
		httpserver.NewOrderHandler(orderSvc),
		httpserver.NewAdminHandler(cfg, productSvc, orderSvc),
	)

	log.Printf("🛒 Pilmart API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
