package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"Socials/internal/pkg/consts"
	"Socials/internal/repository"
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

type FeedService interface {
	BuildHomeFeed(ctx context.Context, viewerUserID uint64) (*dto.HomeFeedDTO, error)
	BuildProfilePage(ctx context.Context, viewerUserID uint64, targetProfileID uint64) (*dto.ProfilePageDTO, error)
}

type feedServiceImpl struct {
	profileRepo repository.ProfileRepo
	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	actionRepo  repository.PostActionRepo
	followSvc   FollowService
	storage     ObjectStorage
}

func NewFeedService(
	profileRepo repository.ProfileRepo,
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	followSvc FollowService,
	storage ObjectStorage,
) FeedService {
	return &feedServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		actionRepo:  actionRepo,
		followSvc:   followSvc,
		storage:     storage,
	}
}

// BuildHomeFeed 首页：全部帖子、除自己以外的推荐用户（每次随机打乱）、帖子总数
func (s *feedServiceImpl) BuildHomeFeed(ctx context.Context, viewerUserID uint64) (*dto.HomeFeedDTO, error) {
	viewer, err := s.viewerProfile(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	liked, err := s.likedSet(ctx, viewer.User.Username, posts)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.profileRepo.ListProfilesExcept(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(suggestions), func(i, j int) {
		suggestions[i], suggestions[j] = suggestions[j], suggestions[i]
	})

	return &dto.HomeFeedDTO{
		Profile:     toProfileDTO(viewer, s.storage),
		Posts:       toPostDTOs(posts, liked, s.storage),
		Suggestions: toProfileDTOs(suggestions, s.storage),
		CountPosts:  int64(len(posts)),
	}, nil
}

// BuildProfilePage 个人主页：目标用户的帖子、关注按钮文案与粉丝/关注数
func (s *feedServiceImpl) BuildProfilePage(ctx context.Context, viewerUserID uint64, targetProfileID uint64) (*dto.ProfilePageDTO, error) {
	target, err := s.profileRepo.GetProfileByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrProfileNotFound
	}

	viewer, err := s.viewerProfile(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}

	var (
		posts          []*model.Post
		liked          map[uint64]struct{}
		isFollowing    bool
		followerCount  int64
		followingCount int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.ListPostsByUserID(gCtx, target.UserID)
		if err != nil {
			return err
		}
		liked, err = s.likedSet(gCtx, viewer.User.Username, posts)
		return err
	})
	g.Go(func() error {
		var err error
		isFollowing, err = s.followSvc.IsFollowing(gCtx, viewer.ID, target.ID)
		return err
	})
	g.Go(func() error {
		var err error
		followerCount, err = s.followSvc.GetFollowerCount(gCtx, target.ID)
		return err
	})
	g.Go(func() error {
		var err error
		followingCount, err = s.followSvc.GetFollowingCount(gCtx, target.ID)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	buttonText := consts.FollowButtonText
	if isFollowing {
		buttonText = consts.UnFollowButtonText
	}

	return &dto.ProfilePageDTO{
		Profile:        toProfileDTO(target, s.storage),
		Posts:          toPostDTOs(posts, liked, s.storage),
		CountPosts:     int64(len(posts)),
		ButtonText:     buttonText,
		IsFollowing:    isFollowing,
		IsSelf:         viewer.ID == target.ID,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}, nil
}

func (s *feedServiceImpl) viewerProfile(ctx context.Context, viewerUserID uint64) (*model.Profile, error) {
	user, err := s.userRepo.GetUserById(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile, err := s.profileRepo.GetOrCreateByUserID(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}
	profile.User = *user
	return profile, nil
}

func (s *feedServiceImpl) likedSet(ctx context.Context, username string, posts []*model.Post) (map[uint64]struct{}, error) {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	likedIDs, err := s.actionRepo.GetLikedPostIDs(ctx, username, ids)
	if err != nil {
		return nil, err
	}
	liked := make(map[uint64]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}
	return liked, nil
}
