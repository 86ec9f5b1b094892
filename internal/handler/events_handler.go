package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamEvents 以 SSE 推送集合变更事件。
// 每个事件的数据为变更主题（clothes/records/theme），前端按主题重新拉取。
func (a *API) StreamEvents(c *gin.Context) {
	ch, cancel := a.notifier.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case topic, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", topic)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
