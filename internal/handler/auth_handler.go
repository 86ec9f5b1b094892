package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// Login 处理登录请求，校验通过后写入会话
func (a *API) Login(c *gin.Context) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}

// GetSession 返回当前会话状态，供前端决定是否展示登录页
func (a *API) GetSession(c *gin.Context) {
	if !a.AuthEnabled() {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "authRequired": false})
		return
	}

	session := sessions.Default(c)
	username := session.Get("username")
	if username == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "authRequired": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "authRequired": true, "username": username})
}

// AuthRequired 会话认证中间件，未配置访问密码时直接放行
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.AuthEnabled() {
			c.Next()
			return
		}

		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondError(c, http.StatusUnauthorized, "请先登录")
			c.Abort()
			return
		}
		c.Next()
	}
}
