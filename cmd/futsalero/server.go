package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/futsalero/config"
	"github.com/d60-Lab/futsalero/internal/api/handler"
	"github.com/d60-Lab/futsalero/internal/api/router"
	"github.com/d60-Lab/futsalero/internal/repository"
	"github.com/d60-Lab/futsalero/internal/service"
	"github.com/d60-Lab/futsalero/pkg/cache"
	"github.com/d60-Lab/futsalero/pkg/database"
	"github.com/d60-Lab/futsalero/pkg/logger"
	"github.com/d60-Lab/futsalero/pkg/telemetry"
)

type server struct {
	cfg       *config.Config
	db        *gorm.DB
	redis     *redis.Client
	cache     cache.Cache
	handler   *handler.Handler
	http      *http.Server
	shutdowns []telemetry.ShutdownFunc
}

func (s *server) loadConfig(c *cli.Context) error {
	cfg, err := config.LoadFrom(c.String("config"))
	if err != nil {
		return err
	}
	s.cfg = cfg
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	// net/http 内部日志也走 zap
	zap.RedirectStdLog(logger.L())
	return nil
}

func (s *server) loadTelemetry(ctx context.Context) error {
	tcfg := s.cfg.Telemetry
	stopTracer, err := telemetry.InitTracer(ctx, tcfg.ServiceName, tcfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	stopSentry, err := telemetry.InitSentry(tcfg.SentryDSN, tcfg.Environment)
	if err != nil {
		return err
	}
	s.shutdowns = append(s.shutdowns, stopTracer, stopSentry)
	return nil
}

func (s *server) loadDatabase() error {
	db, err := database.InitDB(s.cfg)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

// loadCache redis 不可用时退化为无缓存，档案直接读库
func (s *server) loadCache(ctx context.Context) {
	s.cache = cache.Nop()
	if s.cfg.Redis.Addr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     s.cfg.Redis.Addr,
		Password: s.cfg.Redis.Password,
		DB:       s.cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, profile cache disabled", zap.String("addr", s.cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return
	}
	s.redis = client
	s.cache = cache.NewRedis(client, "futsalero:", s.cfg.Redis.ProfileTTL)
	logger.Info("redis connected", zap.String("addr", s.cfg.Redis.Addr))
}

func (s *server) loadServices() {
	store := repository.NewStore(s.db)
	s.handler = handler.NewHandler(
		service.NewIdentityRegistry(store, s.cache, nil),
		service.NewSocialGraph(store, s.cache),
		service.NewMatchLedger(store),
		service.NewContentStore(store, service.NewModerationPolicy()),
		service.NewRankingEngine(store),
	)
}

func (s *server) loadRouter() {
	gin.SetMode(s.cfg.Server.Mode)
	engine := router.New(s.handler, router.Options{
		ServiceName: s.cfg.Telemetry.ServiceName,
		Tracing:     s.cfg.Telemetry.OTLPEndpoint != "",
		RateRPS:     s.cfg.RateLimit.RPS,
		RateBurst:   s.cfg.RateLimit.Burst,
	})
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	s.http = &http.Server{
		Addr:              ":" + strconv.Itoa(s.cfg.Server.Port),
		Handler:           c.Handler(engine),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (s *server) close(ctx context.Context) {
	for i := len(s.shutdowns) - 1; i >= 0; i-- {
		if err := s.shutdowns[i](ctx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		_ = database.Close(s.db)
	}
	logger.Sync()
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := &server{}
	if err := s.loadConfig(c); err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.close(closeCtx)
	}()
	if err := s.loadTelemetry(ctx); err != nil {
		return err
	}
	if err := s.loadDatabase(); err != nil {
		return err
	}
	s.loadCache(ctx)
	s.loadServices()
	s.loadRouter()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func runMigrate(c *cli.Context) error {
	s := &server{}
	if err := s.loadConfig(c); err != nil {
		return err
	}
	defer s.close(context.Background())
	if err := s.loadDatabase(); err != nil {
		return err
	}
	if err := database.Migrate(s.db); err != nil {
		return err
	}
	logger.Info("schema migrated", zap.String("driver", s.cfg.Database.Driver))
	return nil
}
