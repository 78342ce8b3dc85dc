package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
	"orientalgroup/internal/httpx"
	"orientalgroup/internal/validation"
)

type CatalogUseCase interface {
	List(ctx context.Context) ([]dto.ProductDTO, error)
	ListFeatured(ctx context.Context) ([]dto.ProductDTO, error)
	Get(ctx context.Context, id int) (*dto.ProductDTO, error)
	Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductDTO, error)
	Update(ctx context.Context, id int, req dto.SaveProductRequest) (*dto.ProductDTO, error)
	Delete(ctx context.Context, id int) error
}

type ProductsController struct {
	catalog CatalogUseCase
	logger  *zap.Logger
}

func NewProductsController(catalog CatalogUseCase, logger *zap.Logger) *ProductsController {
	return &ProductsController{catalog: catalog, logger: logger}
}

func (c *ProductsController) List(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	products, err := c.catalog.List(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, products)
}

// ListFeatured serves the featured strip on the landing page.
func (c *ProductsController) ListFeatured(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	products, err := c.catalog.ListFeatured(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, products)
}

func (c *ProductsController) Get(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := productIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	product, err := c.catalog.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, product)
}

func (c *ProductsController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SaveProductRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	product, err := c.catalog.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, product)
}

func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := productIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.SaveProductRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	product, err := c.catalog.Update(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, product)
}

func (c *ProductsController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := productIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.catalog.Delete(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ProductsController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func productIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}
