package app

import (
	"fmt"

	articleHTTP "github.com/allisson/cms/internal/article/http"
	articleRepository "github.com/allisson/cms/internal/article/repository"
	articleUseCase "github.com/allisson/cms/internal/article/usecase"
)

// ArticleRepository returns the article repository instance for the configured driver.
func (c *Container) ArticleRepository() (articleUseCase.ArticleRepository, error) {
	c.modules.articleRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["articleRepo"] = fmt.Errorf("failed to get database for article repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.modules.articleRepo = articleRepository.NewMySQLArticleRepository(db)
		case "postgres":
			c.modules.articleRepo = articleRepository.NewPostgreSQLArticleRepository(db)
		default:
			c.initErrors["articleRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["articleRepo"]; exists {
		return nil, err
	}
	return c.modules.articleRepo, nil
}

// ArticleUseCase returns the article use case instance.
func (c *Container) ArticleUseCase() (articleUseCase.UseCase, error) {
	c.modules.articleUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["articleUseCase"] = fmt.Errorf("failed to get tx manager for article use case: %w", err)
			return
		}

		repo, err := c.ArticleRepository()
		if err != nil {
			c.initErrors["articleUseCase"] = fmt.Errorf("failed to get article repository for article use case: %w", err)
			return
		}

		c.modules.articleUseCase = articleUseCase.NewArticleUseCase(txManager, repo)
	})
	if err, exists := c.initErrors["articleUseCase"]; exists {
		return nil, err
	}
	return c.modules.articleUseCase, nil
}

// ArticleHandler returns the article HTTP handler.
func (c *Container) ArticleHandler() (*articleHTTP.ArticleHandler, error) {
	c.modules.articleHandlerInit.Do(func() {
		useCase, err := c.ArticleUseCase()
		if err != nil {
			c.initErrors["articleHandler"] = fmt.Errorf("failed to get article use case for article handler: %w", err)
			return
		}

		c.modules.articleHandler = articleHTTP.NewArticleHandler(useCase, c.Logger())
	})
	if err, exists := c.initErrors["articleHandler"]; exists {
		return nil, err
	}
	return c.modules.articleHandler, nil
}
