package service

import "time"

// StyleReport 汇总穿搭报告所需的全量数据。
// 衣橱与日志均为时间点快照，日志沿用集合的日期倒序。
type StyleReport struct {
	GeneratedAt  time.Time
	ClothesCount int
	RecordsCount int
	Clothes      []ClothingSnapshot
	Records      []RecordSnapshot
}

// ClothingSnapshot 为报告中的单品条目。
type ClothingSnapshot struct {
	UID      string
	Name     string
	Category string
	Color    string
	Image    string
}

// RecordSnapshot 为报告中的日志条目，ItemNames 按记录中的选择顺序展开。
type RecordSnapshot struct {
	UID       string
	Date      time.Time
	Condition string
	Temp      int
	Icon      string
	Note      string
	Photo     string
	ItemNames []string
	Thumbnail string
}

// ReportService 基于衣橱与日志集合生成穿搭报告。
type ReportService struct {
	wardrobe *WardrobeService
	records  *RecordService
}

// NewReportService 构造 ReportService。
func NewReportService(wardrobe *WardrobeService, records *RecordService) *ReportService {
	return &ReportService{wardrobe: wardrobe, records: records}
}

// Build 生成报告快照。
func (s *ReportService) Build() (*StyleReport, error) {
	clothes, err := s.wardrobe.List()
	if err != nil {
		return nil, err
	}
	records, err := s.records.List()
	if err != nil {
		return nil, err
	}

	report := &StyleReport{
		GeneratedAt:  time.Now(),
		ClothesCount: len(clothes),
		RecordsCount: len(records),
		Clothes:      make([]ClothingSnapshot, 0, len(clothes)),
		Records:      make([]RecordSnapshot, 0, len(records)),
	}

	nameByUID := make(map[string]string, len(clothes))
	imageByUID := make(map[string]string, len(clothes))
	for _, item := range clothes {
		nameByUID[item.UID] = item.Name
		imageByUID[item.UID] = item.Image
		report.Clothes = append(report.Clothes, ClothingSnapshot{
			UID:      item.UID,
			Name:     item.Name,
			Category: item.Category,
			Color:    item.Color,
			Image:    item.Image,
		})
	}

	for _, record := range records {
		snapshot := RecordSnapshot{
			UID:       record.UID,
			Date:      record.Date,
			Condition: record.Weather.Condition,
			Temp:      record.Weather.Temp,
			Icon:      record.Weather.Icon,
			Note:      record.Note,
			Photo:     record.Photo,
			Thumbnail: record.Photo,
		}
		for _, itemUID := range record.ItemIDs {
			if name, ok := nameByUID[itemUID]; ok {
				snapshot.ItemNames = append(snapshot.ItemNames, name)
			}
		}
		if snapshot.Thumbnail == "" && len(record.ItemIDs) > 0 {
			snapshot.Thumbnail = imageByUID[record.ItemIDs[0]]
		}
		report.Records = append(report.Records, snapshot)
	}

	return report, nil
}
