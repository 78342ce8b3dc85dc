package usecase

import (
	"context"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
)

type BlogPostRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	FindByID(ctx context.Context, id int) (*domain.BlogPost, error)
	Insert(ctx context.Context, post domain.BlogPost) (int, error)
	Update(ctx context.Context, slug string, post domain.BlogPost) error
	Delete(ctx context.Context, slug string) error
}

type BlogCategoryRepository interface {
	List(ctx context.Context) ([]domain.BlogCategory, error)
	Insert(ctx context.Context, c domain.BlogCategory) (int, error)
	Delete(ctx context.Context, id int) error
}

type BlogUseCase struct {
	posts      BlogPostRepository
	categories BlogCategoryRepository
	logger     *zap.Logger
}

func NewBlogUseCase(posts BlogPostRepository, categories BlogCategoryRepository, logger *zap.Logger) *BlogUseCase {
	return &BlogUseCase{posts: posts, categories: categories, logger: logger}
}

// ListPublished feeds the public blog page; drafts stay hidden.
func (uc *BlogUseCase) ListPublished(ctx context.Context) ([]dto.BlogPostDTO, error) {
	posts, err := uc.posts.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (uc *BlogUseCase) ListAll(ctx context.Context) ([]dto.BlogPostDTO, error) {
	posts, err := uc.posts.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (uc *BlogUseCase) GetBySlug(ctx context.Context, slug string) (*dto.BlogPostDTO, error) {
	post, err := uc.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	// drafts stay invisible on the public site
	if !post.IsPublished {
		return nil, apperrors.NewNotFoundError("blog post not found")
	}
	d := toPostDTO(*post)
	return &d, nil
}

func (uc *BlogUseCase) Create(ctx context.Context, req dto.SaveBlogPostRequest) (*dto.BlogPostDTO, error) {
	id, err := uc.posts.Insert(ctx, postFromRequest(req))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("blog post created", zap.Int("postId", id), zap.String("slug", req.Slug))

	post, err := uc.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toPostDTO(*post)
	return &d, nil
}

// Update addresses the post by its current slug; the request may rename it.
func (uc *BlogUseCase) Update(ctx context.Context, slug string, req dto.SaveBlogPostRequest) (*dto.BlogPostDTO, error) {
	if err := uc.posts.Update(ctx, slug, postFromRequest(req)); err != nil {
		return nil, err
	}

	uc.logger.Info("blog post updated", zap.String("slug", slug))

	post, err := uc.posts.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	d := toPostDTO(*post)
	return &d, nil
}

func (uc *BlogUseCase) Delete(ctx context.Context, slug string) error {
	if err := uc.posts.Delete(ctx, slug); err != nil {
		return err
	}
	uc.logger.Info("blog post deleted", zap.String("slug", slug))
	return nil
}

func (uc *BlogUseCase) ListCategories(ctx context.Context) ([]dto.BlogCategoryDTO, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlogCategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.BlogCategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out, nil
}

func (uc *BlogUseCase) CreateCategory(ctx context.Context, req dto.SaveBlogCategoryRequest) (*dto.BlogCategoryDTO, error) {
	id, err := uc.categories.Insert(ctx, domain.BlogCategory{Name: req.Name, Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	return &dto.BlogCategoryDTO{ID: id, Name: req.Name, Slug: req.Slug}, nil
}

func (uc *BlogUseCase) DeleteCategory(ctx context.Context, id int) error {
	return uc.categories.Delete(ctx, id)
}

func postFromRequest(req dto.SaveBlogPostRequest) domain.BlogPost {
	return domain.BlogPost{
		Slug:          req.Slug,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ImagePath:     req.ImagePath,
		CategoryID:    req.CategoryID,
		AuthorID:      req.AuthorID,
		PublishedDate: req.PublishedDate,
		IsPublished:   req.IsPublished,
	}
}

func toPostDTO(post domain.BlogPost) dto.BlogPostDTO {
	return dto.BlogPostDTO{
		ID:            post.ID,
		Slug:          post.Slug,
		Title:         post.Title,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		ImagePath:     post.ImagePath,
		CategoryID:    post.CategoryID,
		CategoryName:  post.CategoryName,
		AuthorID:      post.AuthorID,
		AuthorName:    post.AuthorName,
		PublishedDate: post.PublishedDate,
		IsPublished:   post.IsPublished,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

func toPostDTOs(posts []domain.BlogPost) []dto.BlogPostDTO {
	out := make([]dto.BlogPostDTO, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostDTO(post))
	}
	return out
}
