package repository

import (
	"Socials/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowers(ctx context.Context, profileID uint64, limit, offset int) ([]*model.ProfileFollow, error)
	GetFollowings(ctx context.Context, profileID uint64, limit, offset int) ([]*model.ProfileFollow, error)
	GetFollowerCount(ctx context.Context, profileID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, profileID uint64) (int64, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// ToggleFollow 在同一事务内切换关注关系，返回切换后是否处于关注状态
func (s *FollowRepoImpl) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	following := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		ids := []uint64{followerID, followingID}
		if err := tx.Model(&model.Profile{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		expected := int64(2)
		if followerID == followingID {
			expected = 1
		}
		if count != expected {
			return ErrProfileMissing
		}

		edge := &model.ProfileFollow{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			First(edge).Error
		if err == nil {
			return tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
				Delete(&model.ProfileFollow{}).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		following = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.ProfileFollow{FollowerID: followerID, FollowingID: followingID}).Error
	})
	if err != nil {
		return false, err
	}
	return following, nil
}

// GetFollowers 获取主页的粉丝列表
func (s *FollowRepoImpl) GetFollowers(ctx context.Context, profileID uint64, limit, offset int) ([]*model.ProfileFollow, error) {
	var follows []*model.ProfileFollow
	result := s.db.WithContext(ctx).
		Where("following_id = ?", profileID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&follows)

	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetFollowings 获取主页的关注列表
func (s *FollowRepoImpl) GetFollowings(ctx context.Context, profileID uint64, limit, offset int) ([]*model.ProfileFollow, error) {
	var follows []*model.ProfileFollow
	result := s.db.WithContext(ctx).
		Where("follower_id = ?", profileID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&follows)

	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetFollowerCount 获取主页的粉丝数量
func (s *FollowRepoImpl) GetFollowerCount(ctx context.Context, profileID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.ProfileFollow{}).
		Where("following_id = ?", profileID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetFollowingCount 获取主页的关注数量
func (s *FollowRepoImpl) GetFollowingCount(ctx context.Context, profileID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.ProfileFollow{}).
		Where("follower_id = ?", profileID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowRepoImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.ProfileFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}
