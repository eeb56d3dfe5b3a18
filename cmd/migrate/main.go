package main

import (
	"log"

	"github.com/garagio/garagio/internal/config"
	"github.com/garagio/garagio/internal/domain/appointment"
	"github.com/garagio/garagio/internal/domain/contract"
	"github.com/garagio/garagio/internal/domain/customer"
	"github.com/garagio/garagio/internal/domain/invoice"
	"github.com/garagio/garagio/internal/domain/lead"
	"github.com/garagio/garagio/internal/domain/maintenance"
	"github.com/garagio/garagio/internal/domain/payment"
	"github.com/garagio/garagio/internal/domain/property"
	"github.com/garagio/garagio/internal/domain/unit"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}

	logger.Info("Running database migrations...")

	err = db.AutoMigrate(
		&property.Property{},
		&unit.Unit{},
		&customer.Customer{},
		&contract.Contract{},
		&invoice.Invoice{},
		&payment.Payment{},
		&maintenance.Request{},
		&appointment.Appointment{},
		&lead.Lead{},
	)
	if err != nil {
		logger.Fatalw("Failed to run migrations", "error", err)
	}

	logger.Info("Migrations completed successfully")
}
