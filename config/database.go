package config

import (
	"fmt"
	"log"

	"reservas/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func dsnFromSettings(s Settings) string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort, s.DBSSLMode, s.DBTimeZone)
}

// ConnectDB abre la conexión a postgres y la deja en config.DB
func ConnectDB(s Settings) (*gorm.DB, error) {
	level := gormlogger.Warn
	if s.IsDev() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsnFromSettings(s)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
	}

	DB = db
	log.Println("Conexión a la base de datos establecida")
	return db, nil
}

// Migrate crea o actualiza las tablas
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.APIToken{},
		&models.Room{},
		&models.ReservationState{},
		&models.Reservation{},
		&models.Notification{},
	)
}
