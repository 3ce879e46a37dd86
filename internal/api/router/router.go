package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/futsalero/docs"
	"github.com/d60-Lab/futsalero/internal/api/handler"
	"github.com/d60-Lab/futsalero/internal/api/middleware"
	"github.com/d60-Lab/futsalero/pkg/telemetry"
)

type Options struct {
	ServiceName string
	Tracing     bool
	RateRPS     float64 // <=0 关闭限流
	RateBurst   int
}

func New(h *handler.Handler, opts Options) *gin.Engine {
	r := gin.New()
	if telemetry.SentryEnabled() {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(), middleware.AccessLog())
	if opts.Tracing {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if opts.RateRPS > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateRPS, opts.RateBurst).Middleware())
	}

	r.GET("/", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.Register)
	r.GET("/search", h.Search)

	players := r.Group("/players")
	{
		players.POST("/sync", h.SyncProfile)
		players.GET("/:code", h.GetProfile)
		players.GET("/:code/following", h.ListFollowing)
	}

	r.POST("/follow", h.Follow)

	r.POST("/matches", h.RecordMatch)
	r.GET("/matches", h.ListMatches)

	posts := r.Group("/posts")
	{
		posts.POST("", h.CreatePost)
		posts.GET("", h.ListPosts)
		posts.POST("/:id/comments", h.AddComment)
		posts.GET("/:id/comments", h.ListComments)
		posts.POST("/:id/vote", h.Vote)
		posts.GET("/:id/votes", h.VoteCounts)
		posts.POST("/:id/report", h.Report)
	}

	r.GET("/ranking", h.Ranking)
	return r
}
