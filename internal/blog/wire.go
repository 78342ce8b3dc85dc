package blog

import (
	"database/sql"

	"go.uber.org/zap"

	"orientalgroup/internal/blog/controller"
	"orientalgroup/internal/blog/repository"
	"orientalgroup/internal/blog/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.BlogController {
	posts := repository.NewMySQLBlogPostRepository(db)
	categories := repository.NewMySQLBlogCategoryRepository(db)
	uc := usecase.NewBlogUseCase(posts, categories, logger)
	return controller.NewBlogController(uc, logger)
}
