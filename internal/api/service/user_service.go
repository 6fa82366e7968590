package service

import (
	"context"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, callerID string) (*models.User, error)
	// Delete removes an account and, through the schema's cascade
	// constraints, every progress row and session it owns. Only the
	// account holder or an admin may delete.
	Delete(ctx context.Context, caller *Claims, userID string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, callerID string) (*models.User, error) {
	user, err := s.repo.FindByID(callerID)
	if err != nil {
		return nil, apperrors.FromDB("get profile", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, caller *Claims, userID string) error {
	if caller.UserID != userID && caller.Role != "admin" {
		return apperrors.Authorization("cannot delete another user's account")
	}
	return s.repo.Delete(ctx, userID)
}
