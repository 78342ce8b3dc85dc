package usecase

import (
	"context"

	"go.uber.org/zap"

	"orientalgroup/internal/dto"
)

type ManageUsersUseCase struct {
	users  UserRepository
	logger *zap.Logger
}

func NewManageUsersUseCase(users UserRepository, logger *zap.Logger) *ManageUsersUseCase {
	return &ManageUsersUseCase{users: users, logger: logger}
}

func (uc *ManageUsersUseCase) List(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toUserDTO(user))
	}
	return out, nil
}

func (uc *ManageUsersUseCase) UpdateRole(ctx context.Context, id uint, role string) error {
	if err := uc.users.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	uc.logger.Info("user role updated", zap.Uint("userId", id), zap.String("role", role))
	return nil
}

func (uc *ManageUsersUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.users.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("user deleted", zap.Uint("userId", id))
	return nil
}
