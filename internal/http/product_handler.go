package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/cache"
	"github.com/balapuneethsujay07/zenkira-store/internal/catalog"
	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

const listCachePrefix = "products:list:"

type ProductHandler struct {
	store store.Store
	cache *cache.Cache
	log   *zap.Logger
}

func NewProductHandler(s store.Store, c *cache.Cache, log *zap.Logger) *ProductHandler {
	return &ProductHandler{store: s, cache: c, log: log}
}

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

type ProductDetailResponse struct {
	domain.Product
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// List handles GET /v1/products with category/series/q/sort query params.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := catalog.Criteria{
		Category:   r.URL.Query().Get("category"),
		Series:     r.URL.Query().Get("series"),
		SearchText: r.URL.Query().Get("q"),
		Sort:       catalog.SortKeyFromString(r.URL.Query().Get("sort")),
	}

	cacheKey := fmt.Sprintf("%scat:%s_ser:%s_q:%s_sort:%s",
		listCachePrefix, criteria.Category, criteria.Series, criteria.SearchText, criteria.Sort)
	if cached, found := h.cache.Get(cacheKey); found {
		respondJSON(h.log, w, http.StatusOK, cached)
		return
	}

	visible := catalog.Visible(h.store.Products(), criteria)
	response := ProductListResponse{Products: visible, Total: len(visible)}

	h.cache.Set(cacheKey, response)
	respondJSON(h.log, w, http.StatusOK, response)
}

// Get handles GET /v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.store.Product(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	respondJSON(h.log, w, http.StatusOK, ProductDetailResponse{
		Product:       product,
		AverageRating: domain.AverageRating(product.Reviews),
		ReviewCount:   len(product.Reviews),
	})
}

// Series handles GET /v1/series, feeding the shop sidebar.
func (h *ProductHandler) Series(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.log, w, http.StatusOK, map[string][]string{"series": h.store.Series()})
}

// Create handles POST /v1/products (admin).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.store.AddProduct(product); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	h.log.Info("product created", zap.String("id", product.ID), zap.String("request_id", getRequestID(r.Context())))
	respondJSON(h.log, w, http.StatusCreated, product)
}

// Update handles PUT /v1/products/{id} (admin).
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	product.ID = chi.URLParam(r, "id")

	if err := h.store.UpdateProduct(product); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	respondJSON(h.log, w, http.StatusOK, product)
}

// Delete handles DELETE /v1/products/{id} (admin).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteProduct(id); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	h.cache.DeleteByPrefix(listCachePrefix)
	h.log.Info("product deleted", zap.String("id", id), zap.String("request_id", getRequestID(r.Context())))
	respondJSON(h.log, w, http.StatusOK, map[string]string{"message": "product deleted"})
}

type AddReviewRequestDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddReview handles POST /v1/products/{id}/reviews. The author name comes
// from the session profile.
func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	auth := h.store.Auth()
	userName := "Anonymous"
	if auth.User != nil {
		userName = auth.User.Name
	}

	review := domain.Review{
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := h.store.AddReview(chi.URLParam(r, "id"), review); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	respondJSON(h.log, w, http.StatusCreated, map[string]string{"message": "review added"})
}
