package main

import (
	"flag"
	"log"

	"k8s.io/klog/v2"

	"github.com/thesisai/backend/config"
	"github.com/thesisai/backend/internal/eventbus"
	"github.com/thesisai/backend/internal/handler"
	"github.com/thesisai/backend/internal/pkg/database"
	"github.com/thesisai/backend/internal/pkg/llm"
	"github.com/thesisai/backend/internal/pkg/mailer"
	"github.com/thesisai/backend/internal/pkg/ratelimit"
	"github.com/thesisai/backend/internal/repository"
	"github.com/thesisai/backend/internal/router"
	"github.com/thesisai/backend/internal/service"
	"github.com/thesisai/backend/internal/service/papersearch"
	"github.com/thesisai/backend/internal/service/revision"
	"github.com/thesisai/backend/internal/subscriber"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	thesisRepo := repository.NewThesisRepository(db)
	commentRepo := repository.NewAdvisorCommentRepository(db)
	sectionRepo := repository.NewChapterSectionRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)

	// 初始化事件总线与通知订阅
	commentBus := eventbus.NewCommentEventBus()
	messageBus := eventbus.NewMessageEventBus()
	notifier := subscriber.NewNotificationSubscriber(thesisRepo, commentRepo, profileRepo, mailer.NewMailer(cfg))
	notifier.Register(commentBus)
	notifier.RegisterMessages(messageBus)

	// 初始化 Service
	thesisService := service.NewThesisService(thesisRepo)
	commentService := service.NewCommentService(commentRepo, commentBus)
	sectionService := service.NewSectionService(sectionRepo)
	profileService := service.NewProfileService(profileRepo)
	messageService := service.NewMessageService(messageRepo, messageBus)
	onboardingService := service.NewOnboardingService(onboardingRepo)
	paperService := papersearch.NewService()

	builder := revision.NewJobBuilder(commentRepo)
	requester := revision.NewRequester(cfg)
	basicReviser := revision.NewBasicReviser(llm.NewClient(cfg))

	// 初始化 Handler
	handlers := router.Handlers{
		Revision:   handler.NewRevisionHandler(builder, requester, basicReviser, profileService),
		Thesis:     handler.NewThesisHandler(thesisService),
		Comment:    handler.NewCommentHandler(commentService),
		Section:    handler.NewSectionHandler(sectionService),
		Message:    handler.NewMessageHandler(messageService),
		Onboarding: handler.NewOnboardingHandler(onboardingService),
		Profile:    handler.NewProfileHandler(profileService),
		Paper:      handler.NewPaperHandler(paperService),
	}

	// 设置路由
	r := router.Setup(cfg, handlers, buildLimiter(cfg))

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildLimiter 组装限流器
// 配置了 Redis 时走共享计数，多实例共用窗口；否则退化为进程内限流
func buildLimiter(cfg *config.Config) ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}

	if cfg.Redis.URL != "" {
		limiter, err := ratelimit.NewRedisLimiter(cfg.Redis.URL, cfg.RateLimit.PerMinute, cfg.RateLimit.Window)
		if err != nil {
			klog.Errorf("Redis 限流器初始化失败，改用进程内限流: %v", err)
		} else {
			return limiter
		}
	}

	return ratelimit.NewMemoryLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Window)
}
