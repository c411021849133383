package wire

import (
	"Socials/internal/api"
	"Socials/internal/api/config"
	"Socials/internal/api/handler"
	"Socials/internal/job"
	"Socials/internal/pkg/cron"
	"Socials/internal/pkg/es"
	"Socials/internal/pkg/kafka"
	"Socials/internal/pkg/minio"
	"Socials/internal/pkg/mongo"
	"Socials/internal/repository"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager // kafka.enable 为 false 时为 nil
}

// BuildApplication 组装依赖，elasticEnabled 表示 es.Client 已初始化
func BuildApplication(db *gorm.DB, mongoDB *mongodrv.Database, cfg *config.Config, elasticEnabled bool) (*ApplicationContainer, error) {
	// Repository
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	followRepo := repository.NewFollowRepo(db)
	postRepo := repository.NewPostRepo(db)
	postActionRepo := repository.NewPostActionRepo(db)
	sysBoxRepo := mongo.NewSysBoxRepo(mongoDB)

	var userESRepo es.UserRepo
	if elasticEnabled {
		userESRepo = es.NewUserRepo()
	}

	storage := minio.NewStorage()

	// Service
	userService := service.NewUserService(userRepo)
	profileService := service.NewProfileService(profileRepo, userRepo, storage)
	followService := service.NewFollowService(followRepo, profileRepo, storage)
	postService := service.NewPostService(postRepo, storage)
	postActionService := service.NewPostActionService(postActionRepo, postRepo)
	feedService := service.NewFeedService(profileRepo, userRepo, postRepo, postActionRepo, followService, storage)
	searchService := service.NewSearchService(profileRepo, userESRepo, storage)
	sysBoxService := service.NewSysBoxService(sysBoxRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		ProfileHandler:    handler.NewProfileHandler(profileService, feedService),
		FeedHandler:       handler.NewFeedHandler(feedService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		FollowHandler:     handler.NewFollowHandler(followService, profileService),
		SearchHandler:     handler.NewSearchHandler(searchService),
		SysBoxHandler:     handler.NewSysBoxHandler(sysBoxService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(cfg.Cron.LikeCountSpec, job.NewLikeCountJob(postRepo))

	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		var err error
		kafkaMgr, err = kafka.NewConsumerManager(cfg, userESRepo, userRepo, profileRepo, postRepo, sysBoxRepo)
		if err != nil {
			return nil, err
		}
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
