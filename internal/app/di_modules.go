package app

import (
	"sync"

	articleHTTP "github.com/allisson/cms/internal/article/http"
	articleUseCase "github.com/allisson/cms/internal/article/usecase"
	authHTTP "github.com/allisson/cms/internal/auth/http"
	authService "github.com/allisson/cms/internal/auth/service"
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
	categoryHTTP "github.com/allisson/cms/internal/category/http"
	categoryUseCase "github.com/allisson/cms/internal/category/usecase"
	userHTTP "github.com/allisson/cms/internal/user/http"
	userUseCase "github.com/allisson/cms/internal/user/usecase"
)

// moduleComponents holds the lazily built module-level components. Each
// component has its own sync.Once; errors are recorded in the container's
// initErrors map under the component name.
type moduleComponents struct {
	// auth
	secretService authService.SecretService
	tokenService  authService.TokenService
	authUseCase   authUseCase.AuthUseCase
	authHandler   *authHTTP.AuthHandler

	// user
	userRepo    userUseCase.UserRepository
	userUseCase userUseCase.UseCase
	userHandler *userHTTP.UserHandler

	// article
	articleRepo    articleUseCase.ArticleRepository
	articleUseCase articleUseCase.UseCase
	articleHandler *articleHTTP.ArticleHandler

	// category
	categoryRepo    categoryUseCase.CategoryRepository
	categoryUseCase categoryUseCase.UseCase
	categoryHandler *categoryHTTP.CategoryHandler

	secretServiceInit   sync.Once
	tokenServiceInit    sync.Once
	authUseCaseInit     sync.Once
	authHandlerInit     sync.Once
	userRepoInit        sync.Once
	userUseCaseInit     sync.Once
	userHandlerInit     sync.Once
	articleRepoInit     sync.Once
	articleUseCaseInit  sync.Once
	articleHandlerInit  sync.Once
	categoryRepoInit    sync.Once
	categoryUseCaseInit sync.Once
	categoryHandlerInit sync.Once
}
