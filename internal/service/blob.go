package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ootdnote/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// internImage 将图片负载写入内容寻址的 blob 表并返回哈希。
// 相同负载只存一份；空负载返回空哈希。核心不解码图片，哈希针对原始字节计算。
func internImage(tx *gorm.DB, data string) (string, error) {
	if data == "" {
		return "", nil
	}

	sum := sha256.Sum256([]byte(data))
	hash := hex.EncodeToString(sum[:])

	blob := db.ImageBlob{Hash: hash, Data: data}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(&blob).Error; err != nil {
		return "", fmt.Errorf("intern image blob: %w", err)
	}

	return hash, nil
}

// loadBlobs 批量取回哈希对应的图片负载。
func loadBlobs(gdb *gorm.DB, hashes []string) (map[string]string, error) {
	unique := make([]string, 0, len(hashes))
	seen := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}

	loaded := make(map[string]string, len(unique))
	if len(unique) == 0 {
		return loaded, nil
	}

	var blobs []db.ImageBlob
	if err := gdb.Where("hash IN ?", unique).Find(&blobs).Error; err != nil {
		return nil, fmt.Errorf("load image blobs: %w", err)
	}
	for _, blob := range blobs {
		loaded[blob.Hash] = blob.Data
	}
	return loaded, nil
}

// pruneOrphanBlobs 删除不再被任何单品或记录引用的图片负载。
// 在实体删除的同一事务内调用，保证存储不会累积孤儿数据。
func pruneOrphanBlobs(tx *gorm.DB) error {
	if err := tx.
		Where("hash NOT IN (?)", tx.Model(&db.ClothingItem{}).Select("image_hash").Where("image_hash <> ''")).
		Where("hash NOT IN (?)", tx.Model(&db.OOTDRecord{}).Select("photo_hash").Where("photo_hash <> ''")).
		Delete(&db.ImageBlob{}).Error; err != nil {
		return fmt.Errorf("prune orphan blobs: %w", err)
	}
	return nil
}
