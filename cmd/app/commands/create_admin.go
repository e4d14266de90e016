package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/cms/internal/app"
	"github.com/allisson/cms/internal/authz"
	"github.com/allisson/cms/internal/config"
	userUseCase "github.com/allisson/cms/internal/user/usecase"
)

// CreateAdminInput holds the flags for the create-admin command.
type CreateAdminInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
}

// adminScanPageSize bounds each page when scanning for an existing admin.
const adminScanPageSize = 100

// RunCreateAdmin creates the initial admin account.
//
// The command refuses to run when any admin already exists; further admins
// are promoted through the API by an existing admin.
func RunCreateAdmin(ctx context.Context, input CreateAdminInput) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	useCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	exists, err := adminExists(ctx, useCase)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		return fmt.Errorf("an admin account already exists; refusing to create another")
	}

	user, err := useCase.Create(ctx, userUseCase.CreateUserInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Gender:    input.Gender,
		Roles:     []string{authz.RoleAdmin},
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("admin account created",
		slog.Int64("id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

// adminExists pages through the user table looking for an admin account.
func adminExists(ctx context.Context, useCase userUseCase.UseCase) (bool, error) {
	offset := 0
	for {
		users, err := useCase.List(ctx, offset, adminScanPageSize)
		if err != nil {
			return false, err
		}
		if len(users) == 0 {
			return false, nil
		}

		for _, user := range users {
			if user.IsAdmin() {
				return true, nil
			}
		}

		offset += len(users)
	}
}
