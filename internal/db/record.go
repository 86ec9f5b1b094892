package db

import (
	"time"

	"gorm.io/datatypes"
)

// Weather 描述单条记录当天的天气信息
// Icon 由 Condition 推导，落库只是为了让快照自包含
type Weather struct {
	Condition string `json:"condition"`
	Temp      int    `json:"temp"`
	Icon      string `json:"icon"`
}

// OOTDRecord 定义单日穿搭日志模型
// UID 是对外暴露的唯一标识，编辑同一条记录时保持不变
// Date 携带完整时间精度，但查询匹配只看本地年月日
// ItemIDs 为有序的单品 UID 列表，顺序即用户选择顺序，存储层不去重
// 同一天允许存在多条记录，按日查询时集合顺序中的第一条命中
type OOTDRecord struct {
	ID        uint                        `gorm:"primarykey"`
	UID       string                      `gorm:"size:64;uniqueIndex;not null"`
	Date      time.Time                   `gorm:"index;not null"`
	Weather   Weather                     `gorm:"embedded;embeddedPrefix:weather_"`
	ItemIDs   datatypes.JSONSlice[string] `gorm:"type:text"`
	Note      string                      `gorm:"type:text"`
	PhotoHash string                      `gorm:"size:64;index"`
	CreatedAt int64                       `gorm:"autoCreateTime:milli"`
	UpdatedAt int64                       `gorm:"autoUpdateTime:milli"`

	Photo string `gorm:"-"`
}

// TableName 重写表名，避免默认蛇形转换拆散 OOTD 缩写
func (OOTDRecord) TableName() string {
	return "ootd_records"
}
