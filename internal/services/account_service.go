package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cinebook/internal/models/db_models"
	"cinebook/internal/models/request_models"
	"cinebook/internal/models/response_models"
	"cinebook/internal/repositories"
	"cinebook/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) (*response_models.AccountResponse, error)
	CreateStaff(request request_models.SignUpRequest, ctx context.Context) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		log:         logger.Named("account"),
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error) {

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.DatabaseError("find account by email", err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	a.log.Debug("login", zap.String("account_id", account.ID.String()), zap.Duration("took", time.Since(startTime)))

	return &response_models.AccountLoginResponse{Token: token, Role: account.Role}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) (*response_models.AccountResponse, error) {
	return a.create(ctx, request, db_models.RoleUser)
}

func (a *AccountService) CreateStaff(request request_models.SignUpRequest, ctx context.Context) (*response_models.AccountResponse, error) {
	return a.create(ctx, request, db_models.RoleStaff)
}

func (a *AccountService) create(ctx context.Context, request request_models.SignUpRequest, role string) (*response_models.AccountResponse, error) {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.DatabaseError("find account by email", err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return nil, utils.DatabaseError("insert account", err)
	}

	a.log.Info("account created", zap.String("account_id", newAccount.ID.String()), zap.String("role", role))

	return &response_models.AccountResponse{
		ID:    newAccount.ID.String(),
		Name:  newAccount.Name,
		Email: newAccount.Email,
		Role:  newAccount.Role,
	}, nil
}
