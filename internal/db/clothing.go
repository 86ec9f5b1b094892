package db

// ClothingItem 定义衣橱单品模型
// UID 是对外暴露的唯一标识，创建后不可变；自增主键仅作为入库顺序使用
// CreatedAt 为毫秒时间戳，是衣橱列表的默认排序键
// Image 为透明的编码图片负载，入库时按哈希去重存入 image_blobs，
// 读取时由 service 层回填，核心不解码也不改写图片内容
type ClothingItem struct {
	ID        uint   `gorm:"primarykey"`
	UID       string `gorm:"size:64;uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Category  string
	Color     string
	ImageHash string `gorm:"size:64;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`

	Image string `gorm:"-"`
}

// TableName 自定义表名以保持命名一致。
func (ClothingItem) TableName() string {
	return "clothing_items"
}
