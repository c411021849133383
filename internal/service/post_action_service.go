package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/redis"
	"Socials/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, postID uint64, username string) (bool, int, error)
	ToggleLikeOnce(ctx context.Context, postID uint64, username string, idempotencyKey string) (*dto.LikeResultDTO, error)
	IsLiked(ctx context.Context, postID uint64, username string) (bool, error)

	CreateComment(ctx context.Context, userID uint64, postID uint64, commentDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, commentID uint64) error
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
}

func NewPostActionService(actionRepo repository.PostActionRepo, postRepo repository.PostRepo) PostActionService {
	return &postActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
	}
}

// ToggleLike 点赞/取消点赞，返回切换后的状态与帖子点赞数
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, postID uint64, username string) (bool, int, error) {
	res, err := s.ToggleLikeOnce(ctx, postID, username, "")
	if err != nil {
		return false, 0, err
	}
	return res.Liked, res.LikesCount, nil
}

// ToggleLikeOnce 同 ToggleLike，idempotencyKey 非空时重放请求直接返回首次结果
func (s *postActionServiceImpl) ToggleLikeOnce(ctx context.Context, postID uint64, username string, idempotencyKey string) (*dto.LikeResultDTO, error) {
	username = strings.TrimSpace(username)
	if postID == 0 || username == "" || len(idempotencyKey) > consts.MaxIdempotencyKey {
		return nil, ErrParamInvalid
	}

	member := strconv.FormatUint(postID, 10) + ":" + username
	release, err := redis.Lock(ctx, consts.LikeLock+member, consts.ToggleLockTTL)
	if err != nil {
		log.ErrorContext(ctx, "acquire like lock failed", "post_id", postID, "err", err)
		return nil, UnExpectedError
	}
	defer release()

	var replayKey string
	if idempotencyKey != "" {
		replayKey = consts.LikeIdempotencyKey + member + ":" + idempotencyKey
		recorded := &dto.LikeResultDTO{}
		found, err := redis.GetJSON(ctx, replayKey, recorded)
		if err != nil {
			return nil, err
		}
		if found {
			return recorded, nil
		}
	}

	liked, count, err := s.actionRepo.ToggleLike(ctx, postID, username)
	if err != nil {
		if errors.Is(err, repository.ErrPostMissing) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	res := &dto.LikeResultDTO{PostID: postID, Liked: liked, LikesCount: count}
	if replayKey != "" {
		if err = redis.SetJSON(context.WithoutCancel(ctx), replayKey, res, consts.IdempotencyTTL); err != nil {
			log.WarnContext(ctx, "record like idempotency key failed", "err", err)
		}
	}
	return res, nil
}

func (s *postActionServiceImpl) IsLiked(ctx context.Context, postID uint64, username string) (bool, error) {
	return s.actionRepo.CheckLikeExists(ctx, postID, username)
}

func (s *postActionServiceImpl) CreateComment(ctx context.Context, userID uint64, postID uint64, commentDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	content := strings.TrimSpace(commentDTO.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{PostID: postID, UserID: userID, Content: content}
	if err = s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.actionRepo.GetCommentByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrCommentNotFound
	}
	return toCommentDTO(created), nil
}

func (s *postActionServiceImpl) GetComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.actionRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDTO(c))
	}
	return res, nil
}

// DeleteComment 仅评论作者可删除
func (s *postActionServiceImpl) DeleteComment(ctx context.Context, userID uint64, commentID uint64) error {
	comment, err := s.actionRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return UnauthorizedError
	}
	return s.actionRepo.DeleteComment(ctx, commentID)
}
