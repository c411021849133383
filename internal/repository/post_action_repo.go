package repository

import (
	"Socials/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostActionRepo interface {
	ToggleLike(ctx context.Context, postID uint64, username string) (bool, int, error)
	CheckLikeExists(ctx context.Context, postID uint64, username string) (bool, error)
	GetLikedPostIDs(ctx context.Context, username string, postIDs []uint64) ([]uint64, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, commentID uint64) error
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

// ToggleLike 锁定帖子行后切换点赞记录并同步 likes_count，返回切换后的状态与计数
func (s *PostActionRepoImpl) ToggleLike(ctx context.Context, postID uint64, username string) (bool, int, error) {
	var (
		liked bool
		count int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := &model.Post{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "likes_count").
			First(post, postID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostMissing
			}
			return err
		}

		res := tx.Where("post_id = ? AND username = ?", postID, username).Delete(&model.LikePost{})
		if res.Error != nil {
			return res.Error
		}

		delta := -1
		if res.RowsAffected == 0 {
			if err = tx.Create(&model.LikePost{PostID: postID, Username: username}).Error; err != nil {
				return err
			}
			delta = 1
			liked = true
		}

		err = tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error
		if err != nil {
			return err
		}
		count = post.LikesCount + delta
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (s *PostActionRepoImpl) CheckLikeExists(ctx context.Context, postID uint64, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.LikePost{}).
		Where("post_id = ? AND username = ?", postID, username).
		Count(&count).Error
	return count > 0, err
}

// GetLikedPostIDs 返回 postIDs 中该用户点过赞的帖子
func (s *PostActionRepoImpl) GetLikedPostIDs(ctx context.Context, username string, postIDs []uint64) ([]uint64, error) {
	liked := make([]uint64, 0)
	if len(postIDs) == 0 {
		return liked, nil
	}
	err := s.db.WithContext(ctx).Model(&model.LikePost{}).
		Where("username = ? AND post_id IN ?", username, postIDs).
		Pluck("post_id", &liked).Error
	return liked, err
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.LikePost{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *PostActionRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	err := s.db.WithContext(ctx).Preload("User").First(comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

func (s *PostActionRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("id asc").
		Find(&comments).Error
	return comments, err
}

func (s *PostActionRepoImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, commentID).Error
}
