package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pawclinic/vet-scheduler/internal/config"
	dbpkg "github.com/pawclinic/vet-scheduler/internal/db"
	"github.com/pawclinic/vet-scheduler/internal/logger"
	"github.com/pawclinic/vet-scheduler/internal/middleware"
	"github.com/pawclinic/vet-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Init("vet-scheduler", cfg.Env)

	db := dbpkg.NewDB(cfg)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reminderDispatcher := routes.RegisterRoutes(r, db, cfg)

	if cfg.ReminderInterval > 0 {
		go reminderDispatcher.RunEvery(context.Background(), cfg.ReminderInterval)
		log.Info().Dur("interval", cfg.ReminderInterval).Msg("reminder scheduler started")
	}

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
