package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/config"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Pet{},
		&models.Vet{},
		&models.Visit{},
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Only non-canceled appointments hold a slot claim, so the unique
	// index is partial. Canceled rows stay behind for history.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uidx_appointments_vet_date_slot
        ON appointments (vet_id, appointment_date, time_slot)
        WHERE status <> 'canceled'
    `)

	return db
}
