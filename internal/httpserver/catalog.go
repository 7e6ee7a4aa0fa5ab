package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pilmart-be/internal/category"
	"pilmart-be/internal/product"
	"pilmart-be/internal/utils"
)

type CatalogHandler struct {
	categories category.Service
	products   product.Service
}

func NewCatalogHandler(categories category.Service, products product.Service) *CatalogHandler {
	return &CatalogHandler{categories: categories, products: products}
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/categories", h.listCategories)
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetCategories(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := product.ListOptions{
		Search: q.Get("search"),
		Page:   utils.ParseIntDefault(q.Get("page"), 1),
		Limit:  utils.ParseIntDefault(q.Get("limit"), 20),
	}
	if raw := q.Get("category"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			opts.CategoryID = &id
		}
	}

	result, err := h.products.List(r.Context(), opts)
	if err != nil {
		fail(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "product not found"})
			return
		}
		fail(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
