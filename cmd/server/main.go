package main

import (
	"log"

	"github.com/ootdnote/internal/config"
	"github.com/ootdnote/internal/db"
	"github.com/ootdnote/internal/logger"
	"github.com/ootdnote/internal/router"
)

func main() {
	config.LoadEnvFiles()

	if _, err := logger.Init(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.S().Fatalf("failed to initialize database: %v", err)
	}

	// 配置了访问密码时确保本地账户存在
	if cfg.AccessPassword != "" {
		if err := db.EnsureUser(cfg.AccessUser, cfg.AccessPassword); err != nil {
			logger.S().Fatalf("failed to ensure access user: %v", err)
		}
	}

	r := router.Setup(cfg)
	logger.S().Infow("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.S().Fatalf("failed to run server: %v", err)
	}
}
