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
	"strings"

	"github.com/google/uuid"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO, image io.Reader) (*dto.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	storage  ObjectStorage
}

func NewPostService(postRepo repository.PostRepo, storage ObjectStorage) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		storage:  storage,
	}
}

// CreatePost 发帖，作者为当前登录用户；image 为空表示纯文字
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO, image io.Reader) (*dto.PostDTO, error) {
	post := &model.Post{
		UserID:  userID,
		Content: strings.TrimSpace(postDTO.Content),
	}
	if post.Content == "" {
		return nil, ErrParamInvalid
	}

	if image != nil {
		objectName, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		post.Image = objectName
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		if post.Image != "" {
			_ = s.storage.DeleteFile(context.WithoutCancel(ctx), post.Image)
		}
		return nil, err
	}

	return s.GetPost(ctx, post.ID)
}

func (s *postServiceImpl) uploadImage(ctx context.Context, image io.Reader) (string, error) {
	data, contentType, err := util.ResizeImage(image, consts.MaxImageSide)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedImage) {
			return "", ErrFileNotSupported
		}
		return "", err
	}

	objectName := path.Join("posts", uuid.NewString()+extensionOf(contentType))
	if _, err = s.storage.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post, s.storage), nil
}

// UpdatePost 仅作者可修改
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post, err := s.getOwnPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(postDTO.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}
	if err = s.postRepo.UpdatePostContent(ctx, post.ID, content); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, post.ID)
}

// DeletePost 仅作者可删除，点赞与评论一并删除
func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.getOwnPost(ctx, userID, postID)
	if err != nil {
		return err
	}

	if err = s.postRepo.DeletePost(ctx, post.ID); err != nil {
		return err
	}

	if post.Image != "" {
		if err = s.storage.DeleteFile(ctx, post.Image); err != nil {
			log.WarnContext(ctx, "delete post image failed", "object", post.Image, "err", err)
		}
	}
	return nil
}

func (s *postServiceImpl) getOwnPost(ctx context.Context, userID uint64, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, UnauthorizedError
	}
	return post, nil
}
