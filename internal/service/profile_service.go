package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/util"
	"Socials/internal/repository"
	"bytes"
	"context"
	"errors"
	"io"
	log "log/slog"
	"path"

	"github.com/google/uuid"
)

type ProfileService interface {
	GetOrCreate(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	GetProfile(ctx context.Context, profileID uint64) (*dto.ProfileDTO, error)
	CreateProfile(ctx context.Context, userID uint64, profileDTO *dto.ProfileBaseDTO) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, profileDTO *dto.ProfileBaseDTO) (*dto.ProfileDTO, error)
	UpdateProfilePic(ctx context.Context, userID uint64, image io.Reader) (*dto.ProfileDTO, error)
	ListProfiles(ctx context.Context) ([]*dto.ProfileDTO, error)
}

type profileServiceImpl struct {
	profileRepo repository.ProfileRepo
	userRepo    repository.UserRepo
	storage     ObjectStorage
}

func NewProfileService(profileRepo repository.ProfileRepo, userRepo repository.UserRepo, storage ObjectStorage) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

// GetOrCreate 获取当前用户的主页，不存在则创建
func (s *profileServiceImpl) GetOrCreate(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileDTO(profile, s.storage), nil
}

func (s *profileServiceImpl) getOrCreate(ctx context.Context, userID uint64) (*model.Profile, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.profileRepo.GetOrCreateByUserID(ctx, userID)
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, profileID uint64) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return toProfileDTO(profile, s.storage), nil
}

// CreateProfile 显式创建主页
func (s *profileServiceImpl) CreateProfile(ctx context.Context, userID uint64, profileDTO *dto.ProfileBaseDTO) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &model.Profile{
		UserID:       userID,
		Bio:          profileDTO.Bio,
		ProfilePic:   consts.DefaultAvatarURL,
		WebsiteURL:   profileDTO.WebsiteURL,
		FacebookURL:  profileDTO.FacebookURL,
		TwitterURL:   profileDTO.TwitterURL,
		InstagramURL: profileDTO.InstagramURL,
	}
	if err = s.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrProfileExist
		}
		return nil, err
	}
	profile.User = *user
	return toProfileDTO(profile, s.storage), nil
}

// UpdateProfile 修改自己的主页
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uint64, profileDTO *dto.ProfileBaseDTO) (*dto.ProfileDTO, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = profileDTO.Bio
	profile.WebsiteURL = profileDTO.WebsiteURL
	profile.FacebookURL = profileDTO.FacebookURL
	profile.TwitterURL = profileDTO.TwitterURL
	profile.InstagramURL = profileDTO.InstagramURL
	if err = s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileDTO(profile, s.storage), nil
}

// UpdateProfilePic 上传并替换头像，旧头像尽力删除
func (s *profileServiceImpl) UpdateProfilePic(ctx context.Context, userID uint64, image io.Reader) (*dto.ProfileDTO, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, contentType, err := util.ResizeImage(image, consts.MaxAvatarSide)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedImage) {
			return nil, ErrFileNotSupported
		}
		return nil, err
	}

	objectName := path.Join("avatars", uuid.NewString()+extensionOf(contentType))
	if _, err = s.storage.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, err
	}
	if err = s.profileRepo.UpdateProfilePic(ctx, userID, objectName); err != nil {
		return nil, err
	}

	old := profile.ProfilePic
	if old != "" && old != consts.DefaultAvatarURL {
		if err = s.storage.DeleteFile(ctx, old); err != nil {
			log.WarnContext(ctx, "delete old avatar failed", "object", old, "err", err)
		}
	}

	profile.ProfilePic = objectName
	return toProfileDTO(profile, s.storage), nil
}

// ListProfiles 好友页：全部主页，按 id 倒序
func (s *profileServiceImpl) ListProfiles(ctx context.Context) ([]*dto.ProfileDTO, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return toProfileDTOs(profiles, s.storage), nil
}

func extensionOf(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
