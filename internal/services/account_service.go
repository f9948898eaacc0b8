package services

import (
	"context"

	"go.uber.org/zap"
	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

const defaultRole = "user"

type AccountService interface {
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
}

type accountService struct {
	repo   repositories.AccountRepository
	logger *zap.Logger
}

func NewAccountService(repo repositories.AccountRepository, logger *zap.Logger) AccountService {
	return &accountService{repo: repo, logger: logger}
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("account lookup failed", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("account lookup failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         defaultRole,
	}
	if err := s.repo.Insert(ctx, account); err != nil {
		s.logger.Error("account insert failed", zap.Error(err))
		return utils.ErrDatabaseError
	}

	s.logger.Info("account created", zap.String("account_id", account.ID.String()))
	return nil
}
