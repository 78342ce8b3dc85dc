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

type BlogUseCase interface {
	ListPublished(ctx context.Context) ([]dto.BlogPostDTO, error)
	ListAll(ctx context.Context) ([]dto.BlogPostDTO, error)
	GetBySlug(ctx context.Context, slug string) (*dto.BlogPostDTO, error)
	Create(ctx context.Context, req dto.SaveBlogPostRequest) (*dto.BlogPostDTO, error)
	Update(ctx context.Context, slug string, req dto.SaveBlogPostRequest) (*dto.BlogPostDTO, error)
	Delete(ctx context.Context, slug string) error
	ListCategories(ctx context.Context) ([]dto.BlogCategoryDTO, error)
	CreateCategory(ctx context.Context, req dto.SaveBlogCategoryRequest) (*dto.BlogCategoryDTO, error)
	DeleteCategory(ctx context.Context, id int) error
}

type BlogController struct {
	blog   BlogUseCase
	logger *zap.Logger
}

func NewBlogController(blog BlogUseCase, logger *zap.Logger) *BlogController {
	return &BlogController{blog: blog, logger: logger}
}

func (c *BlogController) ListPublished(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	posts, err := c.blog.ListPublished(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, posts)
}

func (c *BlogController) ListAll(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	posts, err := c.blog.ListAll(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, posts)
}

func (c *BlogController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		httpx.WriteError(logger, w, apperrors.NewValidationError("invalid slug", apperrors.ValidationDetail{
			Field:   "slug",
			Message: "slug is required",
		}))
		return
	}

	post, err := c.blog.GetBySlug(r.Context(), slug)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, post)
}

func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SaveBlogPostRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	post, err := c.blog.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, post)
}

func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	slug, err := blogSlugParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.SaveBlogPostRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	post, err := c.blog.Update(r.Context(), slug, req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, post)
}

func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	slug, err := blogSlugParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.blog.Delete(r.Context(), slug); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *BlogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	categories, err := c.blog.ListCategories(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, categories)
}

func (c *BlogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SaveBlogCategoryRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	category, err := c.blog.CreateCategory(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, category)
}

func (c *BlogController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := blogIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.blog.DeleteCategory(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *BlogController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func blogSlugParam(r *http.Request) (string, error) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		return "", apperrors.NewValidationError("invalid slug", apperrors.ValidationDetail{
			Field:   "slug",
			Message: "slug is required",
		})
	}
	return slug, nil
}

func blogIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}
