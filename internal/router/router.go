package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/config"
	"github.com/thesisai/backend/internal/handler"
	"github.com/thesisai/backend/internal/pkg/ratelimit"
)

// Handlers 路由装配所需的全部处理器
type Handlers struct {
	Revision   *handler.RevisionHandler
	Thesis     *handler.ThesisHandler
	Comment    *handler.CommentHandler
	Section    *handler.SectionHandler
	Message    *handler.MessageHandler
	Onboarding *handler.OnboardingHandler
	Profile    *handler.ProfileHandler
	Paper      *handler.PaperHandler
}

// Setup 装配路由与中间件
// limiter 为 nil 时不启用限流
func Setup(cfg *config.Config, h Handlers, limiter ratelimit.Limiter) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", handler.UserIDHeader},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		// 生成类接口开销大，单独限流
		revision := api.Group("/thesis/revision")
		if limiter != nil {
			revision.Use(ratelimit.Middleware(limiter))
		}
		{
			revision.POST("/advisor-aligned", h.Revision.AdvisorAligned)
			revision.POST("/basic", h.Revision.Basic)
			revision.POST("/reconcile", h.Revision.Reconcile)
		}

		theses := api.Group("/theses")
		{
			theses.POST("", h.Thesis.Create)
			theses.GET("", h.Thesis.List)
			theses.GET("/:id", h.Thesis.Get)
			theses.DELETE("/:id", h.Thesis.Delete)

			theses.GET("/:id/comments", h.Comment.ListByThesis)
			theses.POST("/:id/comments", h.Comment.Create)

			theses.GET("/:id/messages", h.Message.ListByThesis)
			theses.POST("/:id/messages", h.Message.Send)
			theses.POST("/:id/messages/read", h.Message.MarkRead)

			theses.GET("/:id/chapters/:chapterId/sections", h.Section.ListByChapter)
			theses.GET("/:id/chapters/:chapterId/sections/:sectionId", h.Section.Get)
			theses.PUT("/:id/chapters/:chapterId/sections/:sectionId", h.Section.Save)
			theses.POST("/:id/chapters/:chapterId/sections/:sectionId/apply-revision", h.Section.ApplyRevision)
		}

		comments := api.Group("/comments")
		{
			comments.POST("/:id/integrate", h.Comment.Integrate)
			comments.POST("/:id/verify", h.Comment.Verify)
		}

		papers := api.Group("/papers")
		if limiter != nil {
			papers.Use(ratelimit.Middleware(limiter))
		}
		{
			papers.POST("/search", h.Paper.Search)
		}

		api.GET("/profile", h.Profile.Get)
		api.PUT("/profile", h.Profile.Update)

		api.GET("/onboarding", h.Onboarding.Get)
		api.POST("/onboarding/advance", h.Onboarding.Advance)
	}

	return r
}
