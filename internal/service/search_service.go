package service

import (
	"Socials/internal/api/config"
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"Socials/internal/pkg/es"
	"Socials/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strings"
)

type SearchService interface {
	SearchProfiles(ctx context.Context, query string) ([]*dto.ProfileDTO, error)
}

type searchServiceImpl struct {
	profileRepo repository.ProfileRepo
	userESRepo  es.UserRepo
	storage     ObjectStorage
}

func NewSearchService(profileRepo repository.ProfileRepo, userESRepo es.UserRepo, storage ObjectStorage) SearchService {
	return &searchServiceImpl{
		profileRepo: profileRepo,
		userESRepo:  userESRepo,
		storage:     storage,
	}
}

// SearchProfiles 按用户名子串搜索主页，空查询返回空列表
func (s *searchServiceImpl) SearchProfiles(ctx context.Context, query string) ([]*dto.ProfileDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*dto.ProfileDTO{}, nil
	}

	if s.useElastic() {
		profiles, err := s.searchByElastic(ctx, query)
		if err == nil {
			return toProfileDTOs(profiles, s.storage), nil
		}
		log.WarnContext(ctx, "elastic profile search failed, falling back to database", "err", err)
	}

	profiles, err := s.profileRepo.SearchByUsername(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProfileDTOs(profiles, s.storage), nil
}

func (s *searchServiceImpl) useElastic() bool {
	return s.userESRepo != nil && config.Cfg != nil && config.Cfg.Search.Backend == config.SearchBackendElastic
}

func (s *searchServiceImpl) searchByElastic(ctx context.Context, query string) ([]*model.Profile, error) {
	userIDs, err := s.userESRepo.SearchUserIDs(ctx, query)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.GetProfilesByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}
