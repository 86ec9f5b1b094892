package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const reportDateFormat = "2006-01-02"

// GetReport 生成穿搭报告：衣橱概览与全部记录，心得渲染为安全 HTML
func (a *API) GetReport(c *gin.Context) {
	report, err := a.reports.Build()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "生成穿搭报告失败")
		return
	}

	clothes := make([]gin.H, 0, len(report.Clothes))
	for _, item := range report.Clothes {
		clothes = append(clothes, gin.H{
			"id":       item.UID,
			"name":     item.Name,
			"category": item.Category,
			"color":    item.Color,
			"image":    item.Image,
		})
	}

	records := make([]gin.H, 0, len(report.Records))
	for _, record := range report.Records {
		noteHTML, err := renderMarkdown(record.Note)
		if err != nil {
			noteHTML = ""
		}
		records = append(records, gin.H{
			"id":        record.UID,
			"date":      record.Date.Format(reportDateFormat),
			"condition": record.Condition,
			"temp":      record.Temp,
			"icon":      record.Icon,
			"note":      record.Note,
			"noteHtml":  noteHTML,
			"itemNames": record.ItemNames,
			"thumbnail": record.Thumbnail,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"generatedAt":  report.GeneratedAt.Format(time.RFC3339),
		"clothesCount": report.ClothesCount,
		"recordsCount": report.RecordsCount,
		"clothes":      clothes,
		"records":      records,
	})
}

func renderMarkdown(content string) (string, error) {
	if content == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
