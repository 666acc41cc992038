package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/internal/util"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserService 处理用户资料相关的业务逻辑
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

// ProfileUpdate 允许修改的资料字段
type ProfileUpdate struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 上传头像并更新用户资料，返回头像 URL
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return "", util.ErrInvalidAvatarExt
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := "avatars/" + uuid.New().String() + ext

	avatarURL, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	oldAvatar := user.Avatar
	user.Avatar = avatarURL
	user.UpdatedAt = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	// 旧头像是本地上传的文件时顺手清理，删除失败不影响本次上传
	if old, ok := strings.CutPrefix(oldAvatar, "/uploads/"); ok && old != "" {
		_ = s.Storage.Delete(ctx, old)
	}

	return avatarURL, nil
}
