package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
)

var Module = fx.Provide(
	provideUserRepository,
	provideSessionRepository,
	provideAuthService)

func provideUserRepository(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, sessionRepo)
}
