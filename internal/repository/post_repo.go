package repository

import (
	"Socials/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePostContent(ctx context.Context, id uint64, content string) error
	DeletePost(ctx context.Context, id uint64) error
	ListPosts(ctx context.Context) ([]*model.Post, error)
	ListPostsByUserID(ctx context.Context, userID uint64) ([]*model.Post, error)
	GetLikeCountDrifts(ctx context.Context) ([]*LikeCountDrift, error)
	RecountLikes(ctx context.Context, id uint64) (*LikeCountDrift, error)
}

// LikeCountDrift posts.likes_count 与 like_posts 实际行数不一致的帖子
type LikeCountDrift struct {
	ID         uint64
	LikesCount int64
	Actual     int64
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Comments.User").
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) UpdatePostContent(ctx context.Context, id uint64, content string) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("content", content).Error
}

// DeletePost 删除帖子及其点赞、评论
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.LikePost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// ListPosts 按默认顺序（id 升序）返回全部帖子及作者、评论
func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.listPosts(ctx, s.db.WithContext(ctx))
}

func (s *PostRepoImpl) ListPostsByUserID(ctx context.Context, userID uint64) ([]*model.Post, error) {
	return s.listPosts(ctx, s.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (s *PostRepoImpl) listPosts(_ context.Context, q *gorm.DB) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := q.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Comments.User").
		Order("id asc").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetLikeCountDrifts 找出计数与点赞记录不一致的帖子
func (s *PostRepoImpl) GetLikeCountDrifts(ctx context.Context) ([]*LikeCountDrift, error) {
	drifts := make([]*LikeCountDrift, 0)
	err := s.db.WithContext(ctx).
		Table("posts AS p").
		Select("p.id AS id, p.likes_count AS likes_count, COUNT(l.id) AS actual").
		Joins("LEFT JOIN like_posts AS l ON l.post_id = p.id").
		Group("p.id, p.likes_count").
		Having("COUNT(l.id) <> p.likes_count").
		Scan(&drifts).Error
	return drifts, err
}

// RecountLikes 锁定帖子行后按 like_posts 重算计数，与点赞切换互斥
// 返回重算前后的值，帖子不存在时返回 nil
func (s *PostRepoImpl) RecountLikes(ctx context.Context, id uint64) (*LikeCountDrift, error) {
	var drift *LikeCountDrift
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := &model.Post{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "likes_count").
			First(post, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var actual int64
		if err = tx.Model(&model.LikePost{}).Where("post_id = ?", id).Count(&actual).Error; err != nil {
			return err
		}

		drift = &LikeCountDrift{ID: id, LikesCount: int64(post.LikesCount), Actual: actual}
		if drift.LikesCount == actual {
			return nil
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", id).
			UpdateColumn("likes_count", actual).Error
	})
	if err != nil {
		return nil, err
	}
	return drift, nil
}
