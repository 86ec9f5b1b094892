package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ootdnote/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrThemeIDMissing 在提交空主题标识时返回
var ErrThemeIDMissing = errors.New("theme id is required")

// DefaultThemeID 为从未设置过主题时前端应回退的主题
const DefaultThemeID = "classic"

// Theme 描述一套配色方案，Catalog 中的数据与前端渲染变量一一对应。
type Theme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
}

// themeCatalog 为内置主题清单，首个为默认主题
var themeCatalog = []Theme{
	{ID: "classic", Name: "经典暖咖", Primary: "#8D7B68", Secondary: "#F2EBE3", Background: "#FFFBF5", Text: "#4A3F35", Muted: "#A79277"},
	{ID: "morandi-blue", Name: "莫兰迪蓝", Primary: "#7C93A0", Secondary: "#E3E9ED", Background: "#F4F7F8", Text: "#3E4A52", Muted: "#8EA0AB"},
	{ID: "sage-green", Name: "豆蔻青", Primary: "#94A684", Secondary: "#E9EDDF", Background: "#F7F8F4", Text: "#434A3E", Muted: "#A0B091"},
	{ID: "macaron-pink", Name: "落日粉", Primary: "#D4A5A5", Secondary: "#F6EEEE", Background: "#FFF9F9", Text: "#523E3E", Muted: "#B89090"},
	{ID: "lavender", Name: "丁香紫", Primary: "#A594F9", Secondary: "#EFEDFF", Background: "#F9F8FF", Text: "#3E3A52", Muted: "#948DBB"},
}

// PreferenceService 提供主题偏好的读取与更新能力。
type PreferenceService struct {
	db       *gorm.DB
	notifier *ChangeNotifier
}

// NewPreferenceService 构造 PreferenceService。
func NewPreferenceService(gdb *gorm.DB, notifier *ChangeNotifier) *PreferenceService {
	return &PreferenceService{db: gdb, notifier: notifier}
}

// Themes 返回内置主题清单。
func (s *PreferenceService) Themes() []Theme {
	catalog := make([]Theme, len(themeCatalog))
	copy(catalog, themeCatalog)
	return catalog
}

// Theme 读取当前选中的主题标识，从未设置时返回空串。
// 是否回退默认主题由展示层决定，这里不做标识合法性校验。
func (s *PreferenceService) Theme() (string, error) {
	var pref db.Preference
	if err := s.db.Where("key = ?", db.PreferenceKeyTheme).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load theme preference: %w", err)
	}
	return pref.Value, nil
}

// SetTheme 持久化主题标识，后写覆盖先写。
func (s *PreferenceService) SetTheme(themeID string) error {
	trimmed := strings.TrimSpace(themeID)
	if trimmed == "" {
		return ErrThemeIDMissing
	}

	pref := db.Preference{Key: db.PreferenceKeyTheme, Value: trimmed}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": trimmed}),
	}).Create(&pref).Error; err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}

	s.notifier.Notify(TopicTheme)
	return nil
}
