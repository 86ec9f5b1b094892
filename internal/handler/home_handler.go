package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	homeRecentClothes = 4
	homeRecentRecords = 3
)

// GetHome 返回首页速览数据：最新单品与最近记录
func (a *API) GetHome(c *gin.Context) {
	clothes, err := a.wardrobe.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取衣橱列表失败")
		return
	}
	records, err := a.records.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取穿搭记录失败")
		return
	}

	recentClothes := make([]clothingPayload, 0, homeRecentClothes)
	for _, item := range clothes {
		if len(recentClothes) == homeRecentClothes {
			break
		}
		recentClothes = append(recentClothes, clothingToPayload(item))
	}

	recentRecords := make([]recordPayload, 0, homeRecentRecords)
	for _, record := range records {
		if len(recentRecords) == homeRecentRecords {
			break
		}
		recentRecords = append(recentRecords, recordToPayload(record))
	}

	c.JSON(http.StatusOK, gin.H{
		"clothesCount":  len(clothes),
		"recordsCount":  len(records),
		"recentClothes": recentClothes,
		"recentRecords": recentRecords,
	})
}
