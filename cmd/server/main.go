package main

import (
	"pubfeed/internal/auth"
	"pubfeed/internal/cache"
	"pubfeed/internal/config"
	"pubfeed/internal/db"
	"pubfeed/internal/metrics"
	"pubfeed/internal/router"
	"pubfeed/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Database
	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Cache. Bootstrap owns its lifecycle.
	publicationCache := cache.New(cache.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		Prefix:   cfg.RedisCachePrefix,
		TTL:      cfg.CacheTTL(),
	})
	defer publicationCache.Close()

	tokens, err := auth.NewTokenManager(cfg.SecretKey, cfg.Algorithm, cfg.TokenExpiry())
	if err != nil {
		logrus.Fatalf("Failed to initialize token manager: %v", err)
	}

	// Initialize Gin
	r := gin.Default()

	// Middleware
	r.Use(cors.Default())
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	router.RegisterRoutes(r, cfg, router.Deps{
		Users:        services.NewUserService(conn),
		Publications: services.NewPublicationService(conn, publicationCache),
		Votes:        services.NewVoteService(conn, publicationCache),
		Tokens:       tokens,
	})

	logrus.Infof("pubfeed server starting on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatal(err)
	}
}
