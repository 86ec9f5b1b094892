package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/service"
)

// GetTheme 返回当前主题标识，未设置时回退默认主题
func (a *API) GetTheme(c *gin.Context) {
	theme, err := a.preferences.Theme()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取主题失败")
		return
	}
	if theme == "" {
		theme = service.DefaultThemeID
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme 保存主题偏好
func (a *API) SetTheme(c *gin.Context) {
	var payload struct {
		Theme string `json:"theme"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	if err := a.preferences.SetTheme(payload.Theme); err != nil {
		if errors.Is(err, service.ErrThemeIDMissing) {
			respondError(c, http.StatusBadRequest, "主题标识不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "保存主题失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": payload.Theme})
}

// ListThemes 返回内置主题清单与当前选中项
func (a *API) ListThemes(c *gin.Context) {
	current, err := a.preferences.Theme()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取主题失败")
		return
	}
	if current == "" {
		current = service.DefaultThemeID
	}

	c.JSON(http.StatusOK, gin.H{
		"themes":  a.preferences.Themes(),
		"current": current,
	})
}
