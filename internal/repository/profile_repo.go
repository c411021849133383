package repository

import (
	"Socials/internal/model"
	"Socials/internal/pkg/database"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo interface {
	GetProfileByID(ctx context.Context, id uint64) (*model.Profile, error)
	GetProfileByUserID(ctx context.Context, userID uint64) (*model.Profile, error)
	GetProfilesByIDs(ctx context.Context, ids []uint64) ([]*model.Profile, error)
	GetProfilesByUserIDs(ctx context.Context, userIDs []uint64) ([]*model.Profile, error)
	GetOrCreateByUserID(ctx context.Context, userID uint64) (*model.Profile, error)
	CreateProfile(ctx context.Context, profile *model.Profile) error
	UpdateProfile(ctx context.Context, profile *model.Profile) error
	UpdateProfilePic(ctx context.Context, userID uint64, pic string) error
	ListProfilesExcept(ctx context.Context, excludeID uint64) ([]*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	SearchByUsername(ctx context.Context, keyword string) ([]*model.Profile, error)
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

func (s *ProfileRepoImpl) GetProfileByID(ctx context.Context, id uint64) (*model.Profile, error) {
	profile := &model.Profile{}
	result := s.db.WithContext(ctx).Preload("User").First(profile, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *ProfileRepoImpl) GetProfileByUserID(ctx context.Context, userID uint64) (*model.Profile, error) {
	profile := &model.Profile{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *ProfileRepoImpl) GetProfilesByIDs(ctx context.Context, ids []uint64) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	if len(ids) == 0 {
		return profiles, nil
	}
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", ids).
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

func (s *ProfileRepoImpl) GetProfilesByUserIDs(ctx context.Context, userIDs []uint64) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	if len(userIDs) == 0 {
		return profiles, nil
	}
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", userIDs).
		Order("id asc").
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

// GetOrCreateByUserID 获取用户主页，不存在时创建；并发创建由唯一索引兜底
func (s *ProfileRepoImpl) GetOrCreateByUserID(ctx context.Context, userID uint64) (*model.Profile, error) {
	profile, err := s.GetProfileByUserID(ctx, userID)
	if err != nil || profile != nil {
		return profile, err
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Profile{UserID: userID}).Error
	if err != nil {
		return nil, err
	}
	return s.GetProfileByUserID(ctx, userID)
}

// CreateProfile 创建主页，用户已有主页时返回 ErrDuplicateKey
func (s *ProfileRepoImpl) CreateProfile(ctx context.Context, profile *model.Profile) error {
	err := s.db.WithContext(ctx).Create(profile).Error
	if database.IsDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *ProfileRepoImpl) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	return s.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"bio":           profile.Bio,
			"website_url":   profile.WebsiteURL,
			"facebook_url":  profile.FacebookURL,
			"twitter_url":   profile.TwitterURL,
			"instagram_url": profile.InstagramURL,
		}).Error
}

func (s *ProfileRepoImpl) UpdateProfilePic(ctx context.Context, userID uint64, pic string) error {
	return s.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Update("profile_pic", pic).Error
}

// ListProfilesExcept 按 id 升序返回除 excludeID 以外的所有主页
func (s *ProfileRepoImpl) ListProfilesExcept(ctx context.Context, excludeID uint64) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("id <> ?", excludeID).
		Order("id asc").
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

// ListProfiles 按 id 倒序返回所有主页
func (s *ProfileRepoImpl) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Order("id desc").
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

// SearchByUsername 用户名不区分大小写的子串匹配，按 id 升序
func (s *ProfileRepoImpl) SearchByUsername(ctx context.Context, keyword string) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"

	userIDs := s.db.Model(&model.User{}).
		Select("id").
		Where("LOWER(username) LIKE ? ESCAPE '!'", pattern)

	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN (?)", userIDs).
		Order("id asc").
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
