package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
)

type mockBlogPostRepository struct {
	ListFunc       func(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.BlogPost, error)
	FindByIDFunc   func(ctx context.Context, id int) (*domain.BlogPost, error)
	InsertFunc     func(ctx context.Context, post domain.BlogPost) (int, error)
	UpdateFunc     func(ctx context.Context, slug string, post domain.BlogPost) error
	DeleteFunc     func(ctx context.Context, slug string) error
}

func (m *mockBlogPostRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	return m.ListFunc(ctx, publishedOnly)
}

func (m *mockBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return m.FindBySlugFunc(ctx, slug)
}

func (m *mockBlogPostRepository) FindByID(ctx context.Context, id int) (*domain.BlogPost, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBlogPostRepository) Insert(ctx context.Context, post domain.BlogPost) (int, error) {
	return m.InsertFunc(ctx, post)
}

func (m *mockBlogPostRepository) Update(ctx context.Context, slug string, post domain.BlogPost) error {
	return m.UpdateFunc(ctx, slug, post)
}

func (m *mockBlogPostRepository) Delete(ctx context.Context, slug string) error {
	return m.DeleteFunc(ctx, slug)
}

type mockBlogCategoryRepository struct {
	ListFunc   func(ctx context.Context) ([]domain.BlogCategory, error)
	InsertFunc func(ctx context.Context, c domain.BlogCategory) (int, error)
	DeleteFunc func(ctx context.Context, id int) error
}

func (m *mockBlogCategoryRepository) List(ctx context.Context) ([]domain.BlogCategory, error) {
	return m.ListFunc(ctx)
}

func (m *mockBlogCategoryRepository) Insert(ctx context.Context, c domain.BlogCategory) (int, error) {
	return m.InsertFunc(ctx, c)
}

func (m *mockBlogCategoryRepository) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func TestListPublished_RequestsPublishedOnly(t *testing.T) {
	var gotPublishedOnly bool
	posts := &mockBlogPostRepository{
		ListFunc: func(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
			gotPublishedOnly = publishedOnly
			return []domain.BlogPost{{ID: 1, Slug: "hello", IsPublished: true}}, nil
		},
	}

	uc := NewBlogUseCase(posts, &mockBlogCategoryRepository{}, zap.NewNop())

	result, err := uc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !gotPublishedOnly {
		t.Error("expected publishedOnly filter")
	}
	if len(result) != 1 || result[0].Slug != "hello" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	posts := &mockBlogPostRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.BlogPost, error) {
			return nil, apperrors.NewNotFoundError("blog post not found")
		},
	}

	uc := NewBlogUseCase(posts, &mockBlogCategoryRepository{}, zap.NewNop())

	_, err := uc.GetBySlug(context.Background(), "missing")
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetBySlug_UnpublishedHidden(t *testing.T) {
	posts := &mockBlogPostRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.BlogPost, error) {
			return &domain.BlogPost{ID: 3, Slug: "draft-post", IsPublished: false}, nil
		},
	}

	uc := NewBlogUseCase(posts, &mockBlogCategoryRepository{}, zap.NewNop())

	_, err := uc.GetBySlug(context.Background(), "draft-post")
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError for unpublished post, got %v", err)
	}
}

func TestCreate_ReturnsEnrichedPost(t *testing.T) {
	category := "News"
	posts := &mockBlogPostRepository{
		InsertFunc: func(ctx context.Context, post domain.BlogPost) (int, error) {
			return 9, nil
		},
		FindByIDFunc: func(ctx context.Context, id int) (*domain.BlogPost, error) {
			return &domain.BlogPost{ID: id, Slug: "launch", Title: "Launch", CategoryName: &category}, nil
		},
	}

	uc := NewBlogUseCase(posts, &mockBlogCategoryRepository{}, zap.NewNop())

	post, err := uc.Create(context.Background(), dto.SaveBlogPostRequest{
		Slug:    "launch",
		Title:   "Launch",
		Content: "We are live.",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if post.ID != 9 {
		t.Errorf("expected id 9, got %d", post.ID)
	}
	if post.CategoryName == nil || *post.CategoryName != "News" {
		t.Errorf("expected joined category name, got %v", post.CategoryName)
	}
}

func TestUpdate_KeyedBySlugAndFollowsRename(t *testing.T) {
	var gotSlug string
	posts := &mockBlogPostRepository{
		UpdateFunc: func(ctx context.Context, slug string, post domain.BlogPost) error {
			gotSlug = slug
			return nil
		},
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.BlogPost, error) {
			return &domain.BlogPost{ID: 4, Slug: slug, Title: "Renamed"}, nil
		},
	}

	uc := NewBlogUseCase(posts, &mockBlogCategoryRepository{}, zap.NewNop())

	post, err := uc.Update(context.Background(), "old-slug", dto.SaveBlogPostRequest{
		Slug:    "new-slug",
		Title:   "Renamed",
		Content: "Updated body.",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotSlug != "old-slug" {
		t.Errorf("expected update keyed by current slug, got %q", gotSlug)
	}
	if post.Slug != "new-slug" {
		t.Errorf("expected post re-read by new slug, got %q", post.Slug)
	}
}

func TestDelete_KeyedBySlug(t *testing.T) {
	var gotSlug string
	posts := &mockBlogPostRepository{
		DeleteFunc: func(ctx context.Context, slug string) error {
			gotSlug = slug
			return nil
		},
	}

	uc := NewBlogUseCase(posts, &mockBlogCategoryRepository{}, zap.NewNop())

	if err := uc.Delete(context.Background(), "retired-post"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotSlug != "retired-post" {
		t.Errorf("expected delete keyed by slug, got %q", gotSlug)
	}
}
