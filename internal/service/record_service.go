package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ootdnote/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrRecordEmpty 在记录既无关联单品也无照片时返回
	ErrRecordEmpty = errors.New("record needs at least one item or a photo")
	// ErrRecordDateMissing 在记录缺少日期时返回
	ErrRecordDateMissing = errors.New("record date is required")
	// ErrRecordNotFound 在指定记录不存在时返回
	ErrRecordNotFound = errors.New("ootd record not found")
)

// DefaultWeatherCondition 为未选择天气时的默认标签
const DefaultWeatherCondition = "晴"

// weatherIcons 将天气标签映射为展示用字形，未知标签回退到晴天
var weatherIcons = map[string]string{
	"晴":  "☀️",
	"多云": "☁️",
	"阴":  "🌥️",
	"雨":  "🌧️",
	"雪":  "❄️",
}

// WeatherIcon 返回天气标签对应的字形。
func WeatherIcon(condition string) string {
	if icon, ok := weatherIcons[condition]; ok {
		return icon
	}
	return weatherIcons[DefaultWeatherCondition]
}

// WeatherConditions 返回支持的天气标签集合，顺序固定供前端展示。
func WeatherConditions() []string {
	return []string{"晴", "多云", "阴", "雨", "雪"}
}

// RecordService 负责穿搭日志集合的持久化读写。
type RecordService struct {
	db       *gorm.DB
	notifier *ChangeNotifier
}

// RecordInput 定义保存记录时可提交的字段。
// UID 为空时生成新标识；非空时按 UID 整体替换已有记录（编辑场景）。
// Icon 不接受输入，始终由 Condition 推导。
type RecordInput struct {
	UID       string
	Date      time.Time
	Condition string
	Temp      int
	ItemIDs   []string
	Note      string
	Photo     string
}

// NewRecordService 构造 RecordService。
func NewRecordService(gdb *gorm.DB, notifier *ChangeNotifier) *RecordService {
	return &RecordService{db: gdb, notifier: notifier}
}

// List 返回全部记录，按日期倒序，日期相同时按入库顺序。
// 空集合返回空切片；照片负载从 blob 存储回填。
func (s *RecordService) List() ([]db.OOTDRecord, error) {
	records := make([]db.OOTDRecord, 0)
	if err := s.db.Order("date DESC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list ootd records: %w", err)
	}

	if err := s.hydrate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get 按 UID 获取记录。
func (s *RecordService) Get(uid string) (*db.OOTDRecord, error) {
	var record db.OOTDRecord
	if err := s.db.Where("uid = ?", uid).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get ootd record: %w", err)
	}

	hydrated := []db.OOTDRecord{record}
	if err := s.hydrate(hydrated); err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// Save 保存记录：UID 已存在则整体替换，否则插入。
// 空记录（无单品且无照片）在任何 I/O 之前被拒绝；
// 替换不改变记录的入库位置，编辑不会影响同日多条记录的命中顺序。
func (s *RecordService) Save(input RecordInput) (*db.OOTDRecord, error) {
	if input.Date.IsZero() {
		return nil, ErrRecordDateMissing
	}
	if len(input.ItemIDs) == 0 && input.Photo == "" {
		return nil, ErrRecordEmpty
	}

	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		uid = uuid.New().String()
	}

	condition := strings.TrimSpace(input.Condition)
	if condition == "" {
		condition = DefaultWeatherCondition
	}

	var saved db.OOTDRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		photoHash, err := internImage(tx, input.Photo)
		if err != nil {
			return err
		}

		record := db.OOTDRecord{
			UID:  uid,
			Date: input.Date,
			Weather: db.Weather{
				Condition: condition,
				Temp:      input.Temp,
				Icon:      WeatherIcon(condition),
			},
			ItemIDs:   datatypes.NewJSONSlice(input.ItemIDs),
			Note:      input.Note,
			PhotoHash: photoHash,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"date", "weather_condition", "weather_temp", "weather_icon",
				"item_ids", "note", "photo_hash", "updated_at",
			}),
		}).Create(&record).Error; err != nil {
			return fmt.Errorf("upsert ootd record: %w", err)
		}

		if err := tx.Where("uid = ?", uid).First(&saved).Error; err != nil {
			return fmt.Errorf("reload ootd record: %w", err)
		}

		return pruneOrphanBlobs(tx)
	})
	if err != nil {
		return nil, err
	}

	saved.Photo = input.Photo
	s.notifier.Notify(TopicRecords)
	return &saved, nil
}

// Delete 按 UID 删除记录，UID 不存在时视为无操作而非错误。
func (s *RecordService) Delete(uid string) error {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("uid = ?", uid).Delete(&db.OOTDRecord{})
		if result.Error != nil {
			return fmt.Errorf("delete ootd record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return pruneOrphanBlobs(tx)
	})
	if err != nil {
		return err
	}

	if deleted {
		s.notifier.Notify(TopicRecords)
	}
	return nil
}

func (s *RecordService) hydrate(records []db.OOTDRecord) error {
	hashes := make([]string, 0, len(records))
	for i := range records {
		hashes = append(hashes, records[i].PhotoHash)
	}

	blobs, err := loadBlobs(s.db, hashes)
	if err != nil {
		return err
	}
	for i := range records {
		records[i].Photo = blobs[records[i].PhotoHash]
	}
	return nil
}
