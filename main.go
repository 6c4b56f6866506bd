package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/landingpro/landing/backend/go-services/handlers"
	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/config"
	"github.com/landingpro/landing/backend/go-services/internal/content"
	"github.com/landingpro/landing/backend/go-services/internal/provision"
	"github.com/landingpro/landing/backend/go-services/internal/render"
	"github.com/landingpro/landing/backend/go-services/internal/tokens"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
	"github.com/landingpro/landing/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.L().Info("config loaded",
		zap.String("backend", cfg.CMS.Backend),
		zap.Bool("space_set", cfg.Contentful.SpaceID != ""),
		zap.Bool("preview_enabled", cfg.Preview.Secret != ""),
		zap.Bool("redis", cfg.Redis.Host != ""),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher, err := newFetcher(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to initialize CMS backend: %v", err)
	}
	renderer, err := render.New()
	if err != nil {
		logger.Fatalf("failed to parse templates: %v", err)
	}

	// Connect to Redis so the rate limiter can share counters across instances
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			defer redisClient.Close()
		}
	}

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := setupRouter(cfg, fetcher, renderer, redisClient)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Infof("Starting landing service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// newFetcher wires the configured CMS backend. Missing Contentful
// credentials are not fatal: sections fall back to built-in content.
func newFetcher(ctx context.Context, cfg *config.Config) (*content.Fetcher, error) {
	if cfg.CMS.Backend == config.BackendMemory {
		mem := cms.NewMemory()
		sum, err := provision.New(mem).Run(ctx)
		if err != nil {
			return nil, err
		}
		logger.Infof("memory CMS content model: %s", sum)

		var fx *cms.Fixtures
		if cfg.CMS.Fixtures != "" {
			fx, err = cms.LoadFixturesFile(cfg.CMS.Fixtures)
		} else {
			fx, err = cms.DemoFixtures()
		}
		if err != nil {
			return nil, err
		}
		if err := mem.Load(fx); err != nil {
			return nil, err
		}
		logger.Infof("memory CMS loaded %d assets, %d entries", len(fx.Assets), len(fx.Entries))

		if cfg.CMS.WatchFixtures && cfg.CMS.Fixtures != "" {
			go func() {
				if err := mem.WatchFixtures(ctx, cfg.CMS.Fixtures); err != nil {
					logger.Warnf("fixture watcher stopped: %v", err)
				}
			}()
		}
		// drafts and published content are the same in memory
		return content.NewFetcher(mem, mem), nil
	}

	cf := cfg.Contentful
	delivery := cms.NewDeliveryClient(cms.DeliveryConfig{SpaceID: cf.SpaceID, AccessToken: cf.AccessToken, Environment: cf.Environment, Host: cms.DeliveryHost})
	var preview cms.Reader
	if cf.PreviewAccessToken != "" {
		preview = cms.NewDeliveryClient(cms.DeliveryConfig{SpaceID: cf.SpaceID, AccessToken: cf.PreviewAccessToken, Environment: cf.Environment, Host: cms.PreviewHost})
	}
	return content.NewFetcher(delivery, preview), nil
}

// setupRouter builds the gin engine. redisClient may be nil.
func setupRouter(cfg *config.Config, fetcher *content.Fetcher, renderer *render.Renderer, redisClient *redis.Client) *gin.Engine {
	r := gin.New()

	// Lightweight CORS: the section API is public and read-only.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: the page always renders, but it only shows CMS content once a
	// client is configured
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{"cms": fetcher.Configured()}
		if !deps["cms"] {
			ready = false
		}
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		}
		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	site := r.Group("/")
	// Preview auth runs first so the limiter can key on the preview subject.
	site.Use(middleware.PreviewAuth(cfg.Preview.Secret, tokens.NewRevocations(redisClient)))
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			site.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			site.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		logger.Infof("rate limiter enabled: rps=%.2f burst=%d redis=%v", cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.UseRedis && redisClient != nil)
	}
	handlers.RegisterContentRoutes(site, handlers.NewContentHandler(fetcher, renderer))
	return r
}
