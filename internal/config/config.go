package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	SessionSecret  string
	GinMode        string
	StaticDir      string
	AccessUser     string
	AccessPassword string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "ootdnote.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "ootdnote-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	accessUser := strings.TrimSpace(os.Getenv("ACCESS_USER"))
	if accessUser == "" {
		accessUser = "owner"
	}

	// 为空时服务以免登录模式运行，适合单机私人部署
	accessPassword := strings.TrimSpace(os.Getenv("ACCESS_PASSWORD"))

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabasePath:   databasePath,
		SessionSecret:  sessionSecret,
		GinMode:        ginMode,
		StaticDir:      staticDir,
		AccessUser:     accessUser,
		AccessPassword: accessPassword,
	}
}
