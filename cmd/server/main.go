package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/hbnb-project/hbnb-api/internal/config"
	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/handler"
	"github.com/hbnb-project/hbnb-api/internal/logging"
	"github.com/hbnb-project/hbnb-api/internal/queue"
	"github.com/hbnb-project/hbnb-api/internal/repository"
	"github.com/hbnb-project/hbnb-api/internal/repository/memory"
	"github.com/hbnb-project/hbnb-api/internal/repository/mysql"
	"github.com/hbnb-project/hbnb-api/internal/router"
	"github.com/hbnb-project/hbnb-api/internal/view"
)

func main() {
	// Best-effort: a missing .env just means the environment is set directly.
	_ = godotenv.Load()

	logging.Setup()
	cfg := config.Load()

	stores := openStores(cfg)
	f := facade.New(stores, cfg.BcryptCost)

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, f),
		Users:   handler.NewUserHandler(f),
		Places:  handler.NewPlaceHandler(f),
		Reviews: handler.NewReviewHandler(f),
		Amenity: handler.NewAmenityHandler(f),
		Admin:   handler.NewAdminHandler(f),
		Pages:   handler.NewPageHandler(f),
	}

	rdb := config.NewRedisClient()
	router.RegisterPublic(e, h, rdb)
	router.RegisterProtected(e, h, cfg.JWTSecret)
	router.RegisterAdmin(e, h, cfg.JWTSecret)
	router.RegisterPages(e, h)

	go func() {
		if err := queue.StartReviewConsumer(); err != nil {
			slog.Error("review consumer stopped", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env, "driver", cfg.StorageDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStores builds the store bundle for the configured driver. The mysql
// driver connects and ensures the schema; the memory driver needs nothing.
func openStores(cfg config.Config) repository.Stores {
	switch cfg.StorageDriver {
	case "memory":
		return memory.New()
	case "mysql":
		db, err := mysql.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mysql.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		return mysql.New(db)
	default:
		log.Fatalf("unknown storage driver %q", cfg.StorageDriver)
		return repository.Stores{}
	}
}
