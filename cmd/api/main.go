package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking-api/internal/db"
	"github.com/BruksfildServices01/barber-booking-api/internal/logging"
	"github.com/BruksfildServices01/barber-booking-api/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.Env)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
