package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/calendar"
	"github.com/ootdnote/internal/db"
	"github.com/ootdnote/internal/service"
)

type weatherPayload struct {
	Condition string `json:"condition"`
	Temp      int    `json:"temp"`
	Icon      string `json:"icon"`
}

type recordPayload struct {
	ID      string         `json:"id"`
	Date    string         `json:"date"`
	Weather weatherPayload `json:"weather"`
	ItemIDs []string       `json:"itemIds"`
	Note    string         `json:"note"`
	Photo   string         `json:"photo"`
}

// ListRecords 返回全部穿搭记录 JSON
func (a *API) ListRecords(c *gin.Context) {
	records, err := a.records.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取穿搭记录失败")
		return
	}

	payload := make([]recordPayload, 0, len(records))
	for _, record := range records {
		payload = append(payload, recordToPayload(record))
	}

	c.JSON(http.StatusOK, gin.H{"records": payload})
}

// SaveRecord 创建或整体替换穿搭记录
func (a *API) SaveRecord(c *gin.Context) {
	var payload recordPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	var date time.Time
	if payload.Date != "" {
		parsed, err := time.Parse(time.RFC3339, payload.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, "无效的记录日期")
			return
		}
		date = parsed
	}

	record, err := a.records.Save(service.RecordInput{
		UID:       payload.ID,
		Date:      date,
		Condition: payload.Weather.Condition,
		Temp:      payload.Weather.Temp,
		ItemIDs:   payload.ItemIDs,
		Note:      payload.Note,
		Photo:     payload.Photo,
	})
	if err != nil {
		handleRecordError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": recordToPayload(*record)})
}

// DeleteRecord 删除穿搭记录，标识不存在时同样返回成功
func (a *API) DeleteRecord(c *gin.Context) {
	if err := a.records.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "删除穿搭记录失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetRecordForDay 按日历日查找记录，同日多条时返回第一条命中
func (a *API) GetRecordForDay(c *gin.Context) {
	year, err := parseIntQuery(c, "year")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的年份")
		return
	}
	month, err := parseIntQuery(c, "month")
	if err != nil || month < 1 || month > 12 {
		respondError(c, http.StatusBadRequest, "无效的月份")
		return
	}
	dayNum, err := parseIntQuery(c, "day")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的日期")
		return
	}

	records, err := a.records.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取穿搭记录失败")
		return
	}

	day := calendar.Day{Year: year, Month: time.Month(month), Day: dayNum}
	record := calendar.FindRecordForDay(records, day)
	if record == nil {
		c.JSON(http.StatusOK, gin.H{"record": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": recordToPayload(*record)})
}

func recordToPayload(record db.OOTDRecord) recordPayload {
	return recordPayload{
		ID:   record.UID,
		Date: record.Date.Format(time.RFC3339),
		Weather: weatherPayload{
			Condition: record.Weather.Condition,
			Temp:      record.Weather.Temp,
			Icon:      record.Weather.Icon,
		},
		ItemIDs: record.ItemIDs,
		Note:    record.Note,
		Photo:   record.Photo,
	}
}

func handleRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "记录不存在")
	case errors.Is(err, service.ErrRecordDateMissing):
		respondError(c, http.StatusBadRequest, "记录日期不能为空")
	case errors.Is(err, service.ErrRecordEmpty):
		respondError(c, http.StatusBadRequest, "记录至少需要一件单品或一张照片")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
