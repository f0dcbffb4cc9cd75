// Seeds the demo dataset into the configured database. Intended for
// persistent stores; the server seeds the in-memory default on its own.
package main

import (
	"github.com/markethub-api/internal/config"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/seed"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Run(models.DB); err != nil {
		stdLog.Fatalf("Failed to seed demo data: %v", err)
	}
	stdLog.Printf("Seed finished")
}
