package service

import (
	"Socials/internal/api/config"
	"Socials/internal/model"
	"Socials/internal/pkg/database"
	"Socials/internal/pkg/redis"
	"Socials/internal/pkg/security"
	"Socials/internal/repository"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	security.HashCost = bcrypt.MinCost
	config.Cfg = &config.Config{
		JWT:    config.JWTConfig{Secret: "test-secret", Issuer: "socials-test", ExpireHours: 1},
		Search: config.SearchConfig{Backend: config.SearchBackendDB},
	}
	m.Run()
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string]int
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]int{}}
}

func (f *fakeStorage) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = len(data)
	return objectName, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	f.deleted = append(f.deleted, objectName)
	return nil
}

func (f *fakeStorage) GetPublicURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	return "http://cdn.test/" + objectName
}

type testEnv struct {
	db      *gorm.DB
	mr      *miniredis.Miniredis
	storage *fakeStorage

	userRepo    repository.UserRepo
	profileRepo repository.ProfileRepo
	followRepo  repository.FollowRepo
	postRepo    repository.PostRepo
	actionRepo  repository.PostActionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	return &testEnv{
		db:          db,
		mr:          mr,
		storage:     newFakeStorage(),
		userRepo:    repository.NewUserRepo(db),
		profileRepo: repository.NewProfileRepo(db),
		followRepo:  repository.NewFollowRepo(db),
		postRepo:    repository.NewPostRepo(db),
		actionRepo:  repository.NewPostActionRepo(db),
	}
}

func (e *testEnv) seedUser(t *testing.T, username string) (*model.User, *model.Profile) {
	t.Helper()
	user := e.seedUserOnly(t, username)
	profile := &model.Profile{UserID: user.ID}
	require.NoError(t, e.db.Create(profile).Error)
	return user, profile
}

func (e *testEnv) seedUserOnly(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedPost(t *testing.T, userID uint64, content string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: userID, Content: content}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) followService() FollowService {
	return NewFollowService(e.followRepo, e.profileRepo, e.storage)
}

func (e *testEnv) feedService() FeedService {
	return NewFeedService(e.profileRepo, e.userRepo, e.postRepo, e.actionRepo, e.followService(), e.storage)
}
