package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/api/controllers"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) services.AccountService {
	return services.NewAccountService(accountRepo, logger)
}

func provideAccountController(accountService services.AccountService, logger *zap.Logger) *controllers.AccountController {
	return controllers.NewAccountController(accountService, logger)
}
