package wire

import (
	"Ripple/internal/api"
	"Ripple/internal/api/config"
	"Ripple/internal/api/handler"
	"Ripple/internal/job"
	"Ripple/internal/pkg/consts"
	cronpkg "Ripple/internal/pkg/cron"
	"Ripple/internal/pkg/kafka"
	"Ripple/internal/repository"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	CronMgr  *cronpkg.Manager
	Producer kafka.Producer
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	batchSize := cfg.Feed.BatchSize
	if batchSize <= 0 {
		batchSize = consts.DefaultFeedBatchSize
	}
	archiveSpec := cfg.Archive.Spec
	if archiveSpec == "" {
		archiveSpec = consts.DefaultArchiveSpec
	}

	postService := service.NewPostService(postRepo)
	engagementService := service.NewEngagementService(postRepo, producer)
	feedService := service.NewFeedService(postRepo, batchSize)

	handlers := &api.HandlersGroup{
		PostHandler:       handler.NewPostHandler(postService, engagementService),
		EngagementHandler: handler.NewEngagementHandler(engagementService),
		FeedHandler:       handler.NewFeedHandler(feedService),
	}

	router := api.SetupRouter(handlers)

	archiveJob := job.NewArchiveJob(postService)
	cronMgr := cronpkg.NewCronManager(archiveJob, archiveSpec)

	return &ApplicationContainer{
		Router:   router,
		CronMgr:  cronMgr,
		Producer: producer,
	}, nil
}
