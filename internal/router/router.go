package router

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/config"
	"github.com/ootdnote/internal/db"
	"github.com/ootdnote/internal/handler"
)

// Setup 配置 Gin 引擎和路由
func Setup(cfg config.AppConfig) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("ootdnote_session", store))

	// 前端静态资源，目录不存在时跳过（纯 API 部署场景）
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	a := handler.NewAPI(db.DB, cfg.AccessUser, cfg.AccessPassword)

	api := r.Group("/api")
	{
		api.POST("/login", a.Login)
		api.POST("/logout", a.Logout)
		api.GET("/session", a.GetSession)

		auth := api.Group("")
		auth.Use(a.AuthRequired())
		{
			auth.GET("/clothes", a.ListClothes)
			auth.POST("/clothes", a.SaveClothing)
			auth.GET("/clothes/:id", a.GetClothing)
			auth.DELETE("/clothes/:id", a.DeleteClothing)

			auth.GET("/records", a.ListRecords)
			auth.POST("/records", a.SaveRecord)
			auth.DELETE("/records/:id", a.DeleteRecord)
			auth.GET("/records/day", a.GetRecordForDay)

			auth.GET("/calendar/:year/:month", a.GetCalendarMonth)

			auth.GET("/theme", a.GetTheme)
			auth.PUT("/theme", a.SetTheme)
			auth.GET("/themes", a.ListThemes)

			auth.GET("/home", a.GetHome)
			auth.GET("/report", a.GetReport)
			auth.GET("/events", a.StreamEvents)
		}
	}

	return r
}
