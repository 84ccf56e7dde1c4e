package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/config"
	"github.com/olavurmortensen/pedgraph/internal/core"
	"github.com/olavurmortensen/pedgraph/internal/driver"
	"github.com/olavurmortensen/pedgraph/internal/server"
	"github.com/olavurmortensen/pedgraph/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warnw("could not load config file, using defaults", "path", cfgPath, "error", err)
		cfg = config.Default()
	}

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, logger)
	if err != nil {
		logger.Fatalw("failed to connect to graph database", "uri", cfg.Neo4j.URI, "error", err)
	}
	defer d.Close(context.Background())

	adapter := store.NewAdapter(d, cfg.Load.BatchSize, logger)
	service := core.NewService(adapter, cfg.Load.NAID, logger)

	if err := service.BuildIndices(context.Background()); err != nil {
		logger.Fatalw("failed to build indices", "error", err)
	}

	srv := server.New(service, logger)
	r := srv.SetupRouter()

	logger.Infow("starting server", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalw("server exited", "error", err)
	}
}
