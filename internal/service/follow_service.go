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
)

type FollowService interface {
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, profileID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, profileID uint64) (int64, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowers(ctx context.Context, profileID uint64, limit, offset int) ([]*dto.FollowEdgeDTO, error)
	GetFollowings(ctx context.Context, profileID uint64, limit, offset int) ([]*dto.FollowEdgeDTO, error)
}

type FollowServiceImpl struct {
	followRepo  repository.FollowRepo
	profileRepo repository.ProfileRepo
	storage     ObjectStorage
}

func NewFollowService(followRepo repository.FollowRepo, profileRepo repository.ProfileRepo, storage ObjectStorage) FollowService {
	return &FollowServiceImpl{
		followRepo:  followRepo,
		profileRepo: profileRepo,
		storage:     storage,
	}
}

type fetchListFunc func(ctx context.Context, profileID uint64, limit, offset int) ([]*model.ProfileFollow, error)
type fetchCountFunc func(ctx context.Context, profileID uint64) (int64, error)

// ToggleFollow 关注/取消关注，同一对主页的切换串行执行
func (s *FollowServiceImpl) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == 0 || followingID == 0 {
		return false, ErrParamInvalid
	}
	if followerID == followingID {
		return false, ErrFollowSelf
	}

	lockKey := consts.FollowLock + strconv.FormatUint(followerID, 10) + ":" + strconv.FormatUint(followingID, 10)
	release, err := redis.Lock(ctx, lockKey, consts.ToggleLockTTL)
	if err != nil {
		log.ErrorContext(ctx, "acquire follow lock failed", "key", lockKey, "err", err)
		return false, UnExpectedError
	}
	defer release()

	following, err := s.followRepo.ToggleFollow(ctx, followerID, followingID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileMissing) {
			return false, ErrProfileNotFound
		}
		return false, err
	}

	s.invalidateCounts(ctx, followerID, followingID)
	return following, nil
}

// GetFollowerCount 获取粉丝数量
func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, profileID uint64) (int64, error) {
	return s.getCountCommon(ctx, profileID, consts.ProfileFollowerCountKey, s.followRepo.GetFollowerCount)
}

// GetFollowingCount 获取关注数量
func (s *FollowServiceImpl) GetFollowingCount(ctx context.Context, profileID uint64) (int64, error) {
	return s.getCountCommon(ctx, profileID, consts.ProfileFollowingCountKey, s.followRepo.GetFollowingCount)
}

// IsFollowing followerID 是否关注了 followingID
func (s *FollowServiceImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == 0 || followingID == 0 {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, followerID, followingID)
}

func (s *FollowServiceImpl) GetFollowers(ctx context.Context, profileID uint64, limit, offset int) ([]*dto.FollowEdgeDTO, error) {
	return s.getFollowListCommon(ctx, profileID, limit, offset, true, s.followRepo.GetFollowers)
}

func (s *FollowServiceImpl) GetFollowings(ctx context.Context, profileID uint64, limit, offset int) ([]*dto.FollowEdgeDTO, error) {
	return s.getFollowListCommon(ctx, profileID, limit, offset, false, s.followRepo.GetFollowings)
}

func (s *FollowServiceImpl) getFollowListCommon(
	ctx context.Context,
	profileID uint64,
	limit, offset int,
	isFollowerList bool,
	fetchDB fetchListFunc,
) ([]*dto.FollowEdgeDTO, error) {
	profile, err := s.profileRepo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	edges, err := fetchDB(ctx, profileID, limit, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(edges))
	for _, e := range edges {
		if isFollowerList {
			ids = append(ids, e.FollowerID)
		} else {
			ids = append(ids, e.FollowingID)
		}
	}
	profiles, err := s.profileRepo.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	res := make([]*dto.FollowEdgeDTO, 0, len(edges))
	for i, e := range edges {
		p, ok := byID[ids[i]]
		if !ok {
			continue
		}
		res = append(res, &dto.FollowEdgeDTO{
			Profile:   toProfileDTO(p, s.storage),
			CreatedAt: e.CreatedAt.Format(timeLayout),
		})
	}
	return res, nil
}

// getCountCommon 读穿缓存，回源期间关注关系发生变化时不回写
func (s *FollowServiceImpl) getCountCommon(
	ctx context.Context,
	profileID uint64,
	keyPrefix string,
	fetchDB fetchCountFunc,
) (int64, error) {
	key := keyPrefix + strconv.FormatUint(profileID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		if count, err := strconv.ParseInt(valStr, 10, 64); err == nil {
			return count, nil
		}
	}

	var (
		count  int64
		dbErr  error
		loaded bool
	)
	err = redis.SetIfUnchanged(ctx, followVersionKey(profileID), key, consts.CountCacheTTL, func() (interface{}, error) {
		count, dbErr = fetchDB(ctx, profileID)
		loaded = true
		return count, dbErr
	})
	if !loaded {
		log.WarnContext(ctx, "follow count cache unavailable", "profile_id", profileID, "err", err)
		return fetchDB(ctx, profileID)
	}
	if dbErr != nil {
		return 0, dbErr
	}
	if err != nil {
		log.WarnContext(ctx, "write follow count cache failed", "profile_id", profileID, "err", err)
	}
	return count, nil
}

// invalidateCounts 删除两端的计数缓存并递增版本号
func (s *FollowServiceImpl) invalidateCounts(ctx context.Context, followerID, followingID uint64) {
	err := redis.BumpAndDelete(context.WithoutCancel(ctx),
		[]string{followVersionKey(followerID), followVersionKey(followingID)},
		consts.CountCacheTTL,
		consts.ProfileFollowerCountKey+strconv.FormatUint(followingID, 10),
		consts.ProfileFollowingCountKey+strconv.FormatUint(followerID, 10),
	)
	if err != nil {
		log.WarnContext(ctx, "invalidate follow count cache failed", "err", err)
	}
}

func followVersionKey(profileID uint64) string {
	return consts.ProfileFollowVersionKey + strconv.FormatUint(profileID, 10)
}
