package db

// Preference 存储用户级的键值偏好设置。
type Preference struct {
	ID        uint   `gorm:"primarykey"`
	Key       string `gorm:"size:100;uniqueIndex;not null"`
	Value     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

// TableName 自定义表名以保持命名一致。
func (Preference) TableName() string {
	return "preferences"
}

const (
	// PreferenceKeyTheme 表示当前选中的主题标识。
	PreferenceKeyTheme = "theme"
)
