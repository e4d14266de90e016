package app

import (
	"fmt"

	userHTTP "github.com/allisson/cms/internal/user/http"
	userRepository "github.com/allisson/cms/internal/user/repository"
	userUseCase "github.com/allisson/cms/internal/user/usecase"
)

// UserRepository returns the user repository instance for the configured driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	c.modules.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.modules.userRepo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.modules.userRepo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["userRepo"]; exists {
		return nil, err
	}
	return c.modules.userRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	c.modules.userUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get tx manager for user use case: %w", err)
			return
		}

		repo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		useCase, err := userUseCase.NewUserUseCase(txManager, repo)
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to create user use case: %w", err)
			return
		}

		c.modules.userUseCase = useCase
	})
	if err, exists := c.initErrors["userUseCase"]; exists {
		return nil, err
	}
	return c.modules.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	c.modules.userHandlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = fmt.Errorf("failed to get user use case for user handler: %w", err)
			return
		}

		c.modules.userHandler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if err, exists := c.initErrors["userHandler"]; exists {
		return nil, err
	}
	return c.modules.userHandler, nil
}
