// Package calendar 提供日历网格布局与按日匹配的纯函数。
// 所有函数只读取调用方传入的快照，不持有状态、不做 I/O，可在每次渲染时安全调用。
package calendar

import (
	"time"

	"github.com/ootdnote/internal/db"
)

// Day 表示一个本地日历日。
// 记录的 Date 携带完整时间精度，但匹配只看这三个分量，
// 在边界处归一化为 Day 可以避免时区漂移影响网格落位。
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf 取时间戳的本地日历日分量。
func DayOf(t time.Time) Day {
	local := t.Local()
	return Day{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// Date 返回该日在本地时区零点对应的时间。
func (d Day) Date() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// DaysInMonth 返回指定月份的天数，闰年二月为 29。
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartWeekday 返回指定月份 1 号的星期，0 为周日。
func StartWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// FindRecordForDay 在记录快照中查找属于指定日历日的第一条记录。
// 同一天存在多条记录时，按集合当前顺序第一条命中；未命中返回 nil。
func FindRecordForDay(records []db.OOTDRecord, day Day) *db.OOTDRecord {
	for i := range records {
		if DayOf(records[i].Date) == day {
			return &records[i]
		}
	}
	return nil
}

// ResolveDayThumbnail 解析单日格子的展示缩略图：
// 优先使用记录自己的照片，否则回退到第一个关联单品的图片，都没有则返回空串。
func ResolveDayThumbnail(record *db.OOTDRecord, clothes []db.ClothingItem) string {
	if record == nil {
		return ""
	}
	if record.Photo != "" {
		return record.Photo
	}
	if len(record.ItemIDs) == 0 {
		return ""
	}

	first := record.ItemIDs[0]
	for i := range clothes {
		if clothes[i].UID == first {
			return clothes[i].Image
		}
	}
	return ""
}

// MonthGrid 描述 7 列日历网格的布局参数。
// Leading 为首行空白格数量，等于 1 号的星期；Days 为当月天数。
type MonthGrid struct {
	Year    int
	Month   time.Month
	Days    int
	Leading int
}

// GridFor 计算指定月份的网格布局。
func GridFor(year int, month time.Month) MonthGrid {
	return MonthGrid{
		Year:    year,
		Month:   month,
		Days:    DaysInMonth(year, month),
		Leading: StartWeekday(year, month),
	}
}
