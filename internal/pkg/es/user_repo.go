package es

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const MaxSearchSize = 1000

type UserRepo interface {
	IndexUser(ctx context.Context, user *UserES, version int64) error
	DeleteUser(ctx context.Context, id uint64) error
	SearchUserIDs(ctx context.Context, keyword string) ([]uint64, error)
}

type UserRepoImpl struct {
}

func NewUserRepo() UserRepo {
	return &UserRepoImpl{}
}

// IndexUser 以 binlog 时间戳作为外部版本号写入，旧版本直接丢弃
func (s *UserRepoImpl) IndexUser(ctx context.Context, user *UserES, version int64) error {
	docID := strconv.FormatUint(user.ID, 10)

	_, err := Client.Index(UserIndex).
		Id(docID).
		Document(user).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				log.Warn("Version conflict detected, skipping old data",
					"user_id", user.ID,
					"version", version)
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)
	_, err := Client.Delete(UserIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				log.Warn("User already deleted or not found in ES", "id", id)
				return nil
			}
		}
		return err
	}
	return nil
}

// SearchUserIDs 用户名不区分大小写的子串匹配，按 id 升序返回用户 ID
func (s *UserRepoImpl) SearchUserIDs(ctx context.Context, keyword string) ([]uint64, error) {
	if Client == nil {
		return nil, errors.New("elasticsearch client is not initialized")
	}

	pattern := "*" + escapeWildcard(keyword) + "*"
	caseInsensitive := true

	resp, err := Client.Search().
		Index(UserIndex).
		Query(&types.Query{
			Wildcard: map[string]types.WildcardQuery{
				"username": {Value: &pattern, CaseInsensitive: &caseInsensitive},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"id": {Order: &sortorder.Asc},
		}}).
		Size(MaxSearchSize).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var user UserES
		if err = json.Unmarshal(hit.Source_, &user); err != nil {
			continue
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`)

func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}
