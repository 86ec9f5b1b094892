package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ootdnote/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrClothingNameMissing 在单品缺少名称时返回
	ErrClothingNameMissing = errors.New("clothing name is required")
	// ErrClothingImageMissing 在单品缺少图片时返回
	ErrClothingImageMissing = errors.New("clothing image is required")
	// ErrClothingNotFound 在指定单品不存在时返回
	ErrClothingNotFound = errors.New("clothing item not found")
)

// 未填写分类/色系时使用的占位值，与前端录入约定一致
const (
	DefaultCategory = "其他"
	DefaultColor    = "无色"
)

// WardrobeService 负责衣橱单品集合的持久化读写。
// 所有写入在单个事务内完成，失败时不落任何部分字段，调用方快照保持可用。
type WardrobeService struct {
	db       *gorm.DB
	notifier *ChangeNotifier
}

// ClothingInput 定义保存单品时可提交的字段。
// UID 为空时视为新建并生成标识；非空时按 UID 整体覆盖已有单品。
type ClothingInput struct {
	UID       string
	Name      string
	Category  string
	Color     string
	Image     string
	CreatedAt int64
}

// NewWardrobeService 构造 WardrobeService。
func NewWardrobeService(gdb *gorm.DB, notifier *ChangeNotifier) *WardrobeService {
	return &WardrobeService{db: gdb, notifier: notifier}
}

// List 返回全部单品，按创建时间倒序，时间相同时按入库顺序。
// 空衣橱返回空切片而不是错误；图片负载从 blob 存储回填。
func (s *WardrobeService) List() ([]db.ClothingItem, error) {
	items := make([]db.ClothingItem, 0)
	if err := s.db.Order("created_at DESC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list clothing items: %w", err)
	}

	if err := s.hydrate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get 按 UID 获取单品。
func (s *WardrobeService) Get(uid string) (*db.ClothingItem, error) {
	var item db.ClothingItem
	if err := s.db.Where("uid = ?", uid).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClothingNotFound
		}
		return nil, fmt.Errorf("get clothing item: %w", err)
	}

	hydrated := []db.ClothingItem{item}
	if err := s.hydrate(hydrated); err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// Save 保存单品：UID 已存在则整体替换，否则插入。
// 校验在任何 I/O 之前完成，不合法的输入不会产生部分写入。
func (s *WardrobeService) Save(input ClothingInput) (*db.ClothingItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrClothingNameMissing
	}
	if input.Image == "" {
		return nil, ErrClothingImageMissing
	}

	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		uid = uuid.New().String()
	}

	createdAt := input.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = DefaultCategory
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = DefaultColor
	}

	var saved db.ClothingItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		hash, err := internImage(tx, input.Image)
		if err != nil {
			return err
		}

		item := db.ClothingItem{
			UID:       uid,
			Name:      name,
			Category:  category,
			Color:     color,
			ImageHash: hash,
			CreatedAt: createdAt,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "color", "image_hash", "created_at", "updated_at"}),
		}).Create(&item).Error; err != nil {
			return fmt.Errorf("upsert clothing item: %w", err)
		}

		if err := tx.Where("uid = ?", uid).First(&saved).Error; err != nil {
			return fmt.Errorf("reload clothing item: %w", err)
		}

		// 替换图片后原负载可能失去全部引用
		return pruneOrphanBlobs(tx)
	})
	if err != nil {
		return nil, err
	}

	saved.Image = input.Image
	s.notifier.Notify(TopicClothes)
	return &saved, nil
}

// Delete 按 UID 删除单品，UID 不存在时视为无操作而非错误。
func (s *WardrobeService) Delete(uid string) error {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("uid = ?", uid).Delete(&db.ClothingItem{})
		if result.Error != nil {
			return fmt.Errorf("delete clothing item: %w", result.Error)
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
		s.notifier.Notify(TopicClothes)
	}
	return nil
}

func (s *WardrobeService) hydrate(items []db.ClothingItem) error {
	hashes := make([]string, 0, len(items))
	for i := range items {
		hashes = append(hashes, items[i].ImageHash)
	}

	blobs, err := loadBlobs(s.db, hashes)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Image = blobs[items[i].ImageHash]
	}
	return nil
}
