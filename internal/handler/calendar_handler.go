package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/calendar"
)

type calendarCell struct {
	Day       int    `json:"day"`
	HasRecord bool   `json:"hasRecord"`
	RecordID  string `json:"recordId,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// GetCalendarMonth 返回指定月份的日历网格数据
func (a *API) GetCalendarMonth(c *gin.Context) {
	year, err := parseIntParam(c, "year")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的年份")
		return
	}
	month, err := parseIntParam(c, "month")
	if err != nil || month < 1 || month > 12 {
		respondError(c, http.StatusBadRequest, "无效的月份")
		return
	}

	records, err := a.records.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取穿搭记录失败")
		return
	}
	clothes, err := a.wardrobe.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取衣橱列表失败")
		return
	}

	grid := calendar.GridFor(year, time.Month(month))
	cells := make([]calendarCell, 0, grid.Days)
	for dayNum := 1; dayNum <= grid.Days; dayNum++ {
		day := calendar.Day{Year: grid.Year, Month: grid.Month, Day: dayNum}
		cell := calendarCell{Day: dayNum}
		if record := calendar.FindRecordForDay(records, day); record != nil {
			cell.HasRecord = true
			cell.RecordID = record.UID
			cell.Icon = record.Weather.Icon
			cell.Thumbnail = calendar.ResolveDayThumbnail(record, clothes)
		}
		cells = append(cells, cell)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":    grid.Year,
		"month":   int(grid.Month),
		"days":    grid.Days,
		"leading": grid.Leading,
		"cells":   cells,
	})
}
