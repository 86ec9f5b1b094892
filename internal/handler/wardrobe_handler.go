package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/db"
	"github.com/ootdnote/internal/service"
)

type clothingPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Color     string `json:"color"`
	Image     string `json:"image"`
	CreatedAt int64  `json:"createdAt"`
}

// ListClothes 返回衣橱全部单品 JSON
func (a *API) ListClothes(c *gin.Context) {
	items, err := a.wardrobe.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取衣橱列表失败")
		return
	}

	payload := make([]clothingPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, clothingToPayload(item))
	}

	c.JSON(http.StatusOK, gin.H{"clothes": payload})
}

// GetClothing 返回单个单品详情
func (a *API) GetClothing(c *gin.Context) {
	item, err := a.wardrobe.Get(c.Param("id"))
	if err != nil {
		handleClothingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clothing": clothingToPayload(*item)})
}

// SaveClothing 创建或整体替换单品
func (a *API) SaveClothing(c *gin.Context) {
	var payload clothingPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	item, err := a.wardrobe.Save(service.ClothingInput{
		UID:       payload.ID,
		Name:      payload.Name,
		Category:  payload.Category,
		Color:     payload.Color,
		Image:     payload.Image,
		CreatedAt: payload.CreatedAt,
	})
	if err != nil {
		handleClothingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clothing": clothingToPayload(*item)})
}

// DeleteClothing 删除单品，标识不存在时同样返回成功
func (a *API) DeleteClothing(c *gin.Context) {
	if err := a.wardrobe.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "删除单品失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func clothingToPayload(item db.ClothingItem) clothingPayload {
	return clothingPayload{
		ID:        item.UID,
		Name:      item.Name,
		Category:  item.Category,
		Color:     item.Color,
		Image:     item.Image,
		CreatedAt: item.CreatedAt,
	}
}

func handleClothingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClothingNotFound):
		respondError(c, http.StatusNotFound, "单品不存在")
	case errors.Is(err, service.ErrClothingNameMissing):
		respondError(c, http.StatusBadRequest, "单品名称不能为空")
	case errors.Is(err, service.ErrClothingImageMissing):
		respondError(c, http.StatusBadRequest, "单品图片不能为空")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
