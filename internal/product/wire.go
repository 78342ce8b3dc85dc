package product

import (
	"database/sql"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"orientalgroup/internal/product/cache"
	"orientalgroup/internal/product/controller"
	"orientalgroup/internal/product/repository"
	"orientalgroup/internal/product/usecase"
)

// NewModule wires the catalog. A nil redis client disables caching rather
// than failing startup.
func NewModule(db *sql.DB, redisClient *goredis.Client, cacheTTL time.Duration, logger *zap.Logger) *controller.ProductsController {
	repo := repository.NewMySQLProductRepository(db)

	var catalogCache usecase.CatalogCache = cache.NoopCache{}
	if redisClient != nil {
		catalogCache = cache.NewRedisCache(redisClient)
	}

	uc := usecase.NewCatalogUseCase(repo, catalogCache, cacheTTL, logger)
	return controller.NewProductsController(uc, logger)
}
