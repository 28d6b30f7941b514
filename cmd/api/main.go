package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/pontolago/ponto-api/internal/audit"
	"github.com/pontolago/ponto-api/internal/config"
	dbpkg "github.com/pontolago/ponto-api/internal/db"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/infra/repository"
	"github.com/pontolago/ponto-api/internal/logging"
	"github.com/pontolago/ponto-api/internal/middleware"
	"github.com/pontolago/ponto-api/internal/routes"
)

func main() {

	godotenv.Load()

	cfg := config.Load()
	logger := logging.New("api")

	var store domain.Store
	var sink audit.Sink

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db := dbpkg.NewDB(cfg)
		store = repository.NewGormStore(db)
		sink = audit.NewDBLogger(db)

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = repository.NewRedisStore(client)
		sink = audit.NewSlogLogger(logging.New("audit"))

	case config.StoreMemory:
		store = repository.NewMemoryStore()
		sink = audit.NewSlogLogger(logging.New("audit"))

	default:
		logger.Error("unknown store driver", "driver", cfg.StoreDriver)
		os.Exit(1)
	}

	dispatcher := audit.NewDispatcher(sink, logging.New("audit"))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLog(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Store:      store,
		Dispatcher: dispatcher,
	})

	logger.Info("server running", "addr", cfg.Addr(), "store", cfg.StoreDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
