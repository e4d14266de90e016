package app

import (
	"fmt"

	categoryHTTP "github.com/allisson/cms/internal/category/http"
	categoryRepository "github.com/allisson/cms/internal/category/repository"
	categoryUseCase "github.com/allisson/cms/internal/category/usecase"
)

// CategoryRepository returns the category repository instance for the configured driver.
func (c *Container) CategoryRepository() (categoryUseCase.CategoryRepository, error) {
	c.modules.categoryRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["categoryRepo"] = fmt.Errorf("failed to get database for category repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.modules.categoryRepo = categoryRepository.NewMySQLCategoryRepository(db)
		case "postgres":
			c.modules.categoryRepo = categoryRepository.NewPostgreSQLCategoryRepository(db)
		default:
			c.initErrors["categoryRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["categoryRepo"]; exists {
		return nil, err
	}
	return c.modules.categoryRepo, nil
}

// CategoryUseCase returns the category use case instance.
func (c *Container) CategoryUseCase() (categoryUseCase.UseCase, error) {
	c.modules.categoryUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["categoryUseCase"] = fmt.Errorf("failed to get tx manager for category use case: %w", err)
			return
		}

		repo, err := c.CategoryRepository()
		if err != nil {
			c.initErrors["categoryUseCase"] = fmt.Errorf("failed to get category repository for category use case: %w", err)
			return
		}

		c.modules.categoryUseCase = categoryUseCase.NewCategoryUseCase(txManager, repo)
	})
	if err, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, err
	}
	return c.modules.categoryUseCase, nil
}

// CategoryHandler returns the category HTTP handler.
func (c *Container) CategoryHandler() (*categoryHTTP.CategoryHandler, error) {
	c.modules.categoryHandlerInit.Do(func() {
		useCase, err := c.CategoryUseCase()
		if err != nil {
			c.initErrors["categoryHandler"] = fmt.Errorf("failed to get category use case for category handler: %w", err)
			return
		}

		c.modules.categoryHandler = categoryHTTP.NewCategoryHandler(useCase, c.Logger())
	})
	if err, exists := c.initErrors["categoryHandler"]; exists {
		return nil, err
	}
	return c.modules.categoryHandler, nil
}
