package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/KevinThakor17/EMS/internal/config"
	"github.com/KevinThakor17/EMS/internal/db"
	"github.com/KevinThakor17/EMS/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DbDsn, cfg.SqliteFallback)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	if cfg.SeedDemo {
		db.SeedDemoData(database)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
