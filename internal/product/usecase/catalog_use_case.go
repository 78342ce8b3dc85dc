package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	rediskeys "orientalgroup/internal/infrastructure/redis"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int, error)
	Update(ctx context.Context, id int, p domain.Product) error
	Delete(ctx context.Context, id int) error
}

// CatalogCache abstracts the redis list cache. Implementations return a
// cache miss as ("", false, nil); errors mean the cache is unhealthy and
// reads fall through to MySQL.
type CatalogCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

type CatalogUseCase struct {
	products ProductRepository
	cache    CatalogCache
	ttl      time.Duration
	logger   *zap.Logger
}

func NewCatalogUseCase(products ProductRepository, cache CatalogCache, ttl time.Duration, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{products: products, cache: cache, ttl: ttl, logger: logger}
}

func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.ProductDTO, error) {
	return uc.cachedList(ctx, rediskeys.KeyProductList, uc.products.List)
}

func (uc *CatalogUseCase) ListFeatured(ctx context.Context) ([]dto.ProductDTO, error) {
	return uc.cachedList(ctx, rediskeys.KeyProductFeatured, uc.products.ListFeatured)
}

// cachedList is a read-through: a cache hit is served as-is, a miss loads
// from MySQL and repopulates. Cache errors are logged and never fail a read.
func (uc *CatalogUseCase) cachedList(
	ctx context.Context,
	key string,
	load func(ctx context.Context) ([]domain.Product, error),
) ([]dto.ProductDTO, error) {
	if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var out []dto.ProductDTO
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
		uc.logger.Warn("catalog cache entry corrupt", zap.String("key", key))
	}

	products, err := load(ctx)
	if err != nil {
		return nil, err
	}
	out := toProductDTOs(products)

	if encoded, err := json.Marshal(out); err == nil {
		if err := uc.cache.Set(ctx, key, string(encoded), uc.ttl); err != nil {
			uc.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return out, nil
}

func (uc *CatalogUseCase) Get(ctx context.Context, id int) (*dto.ProductDTO, error) {
	p, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toProductDTO(*p)
	return &d, nil
}

func (uc *CatalogUseCase) Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductDTO, error) {
	id, err := uc.products.Insert(ctx, productFromRequest(req))
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("product created", zap.Int("productId", id))
	return uc.Get(ctx, id)
}

func (uc *CatalogUseCase) Update(ctx context.Context, id int, req dto.SaveProductRequest) (*dto.ProductDTO, error) {
	if err := uc.products.Update(ctx, id, productFromRequest(req)); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("product updated", zap.Int("productId", id))
	return uc.Get(ctx, id)
}

func (uc *CatalogUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx)
	uc.logger.Info("product deleted", zap.Int("productId", id))
	return nil
}

func (uc *CatalogUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx, rediskeys.KeyProductList, rediskeys.KeyProductFeatured); err != nil {
		uc.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func productFromRequest(req dto.SaveProductRequest) domain.Product {
	return domain.Product{
		Title:        req.Title,
		Description:  req.Description,
		ImagePath:    req.ImagePath,
		ColorClass:   req.ColorClass,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	}
}

func toProductDTO(p domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImagePath:    p.ImagePath,
		ColorClass:   p.ColorClass,
		IsFeatured:   p.IsFeatured,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductDTOs(products []domain.Product) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}
