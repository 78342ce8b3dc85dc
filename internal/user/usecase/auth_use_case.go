package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
)

const bcryptCost = 12

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) (uint, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uint, role string) error
	Delete(ctx context.Context, id uint) error
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type AuthUseCase struct {
	users  UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewAuthUseCase(users UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, logger: logger}
}

func (uc *AuthUseCase) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	id, err := uc.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.Uint("userId", id), zap.String("email", req.Email))
	return uc.authResponse(created)
}

// Login answers unknown email and wrong password identically so the endpoint
// cannot be used to probe for accounts.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	uc.logger.Info("user logged in", zap.Uint("userId", user.ID))
	return uc.authResponse(user)
}

func (uc *AuthUseCase) GetUser(ctx context.Context, id uint) (*dto.UserDTO, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toUserDTO(*user)
	return &d, nil
}

func (uc *AuthUseCase) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, apperrors.NewInternalError("issuing token", err)
	}
	return &dto.AuthResponse{User: toUserDTO(*user), Token: token}, nil
}

func toUserDTO(user domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
