package service

import (
	"context"
	"fmt"
	"io"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"path/filepath"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) UpdateProfile(userID uint, name string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("avatars/%d/%s%s", userID, model.GenerateUUID(), ext)

	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateAvatar(userID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) List(role model.UserRole, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(role, page, limit)
}

func (s *UserService) SetVerified(userID uint, verified bool) error {
	return s.UserRepo.SetVerified(userID, verified)
}
