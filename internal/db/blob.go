package db

// ImageBlob 按内容寻址存储图片负载
// Hash 为负载的 sha256 十六进制摘要，相同图片只存一份；
// 单品图与记录照片都通过哈希引用这里，实体删除后孤儿负载会被清理
type ImageBlob struct {
	ID        uint   `gorm:"primarykey"`
	Hash      string `gorm:"size:64;uniqueIndex;not null"`
	Data      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

// TableName 自定义表名以保持命名一致。
func (ImageBlob) TableName() string {
	return "image_blobs"
}
