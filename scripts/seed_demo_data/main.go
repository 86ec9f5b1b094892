package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ootdnote/internal/config"
	"github.com/ootdnote/internal/db"
	"github.com/ootdnote/internal/service"
)

// 演示数据生成器：往数据库里塞一个小衣橱和一周的穿搭记录
func main() {
	config.LoadEnvFiles()
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	notifier := service.NewChangeNotifier()
	wardrobe := service.NewWardrobeService(db.DB, notifier)
	records := service.NewRecordService(db.DB, notifier)
	preferences := service.NewPreferenceService(db.DB, notifier)

	itemIDs := seedClothes(wardrobe)
	seedRecords(records, itemIDs)

	if err := preferences.SetTheme(service.DefaultThemeID); err != nil {
		log.Fatal("主题初始化失败:", err)
	}

	fmt.Println("演示数据生成完成！")
}

func seedClothes(wardrobe *service.WardrobeService) []string {
	var count int64
	db.DB.Model(&db.ClothingItem{}).Count(&count)
	if count > 0 {
		fmt.Println("衣橱已有数据，跳过创建")
		return nil
	}

	seeds := []service.ClothingInput{
		{Name: "驼色长款大衣", Category: "外套", Color: "棕色系", Image: placeholderImage("coat")},
		{Name: "米白高领针织衫", Category: "上装", Color: "白色系", Image: placeholderImage("knit")},
		{Name: "直筒牛仔裤", Category: "下装", Color: "蓝色系", Image: placeholderImage("jeans")},
		{Name: "切尔西短靴", Category: "鞋履", Color: "黑色系", Image: placeholderImage("boots")},
		{Name: "帆布托特包", Category: "配饰", Color: "米色系", Image: placeholderImage("tote")},
	}

	ids := make([]string, 0, len(seeds))
	for _, input := range seeds {
		item, err := wardrobe.Save(input)
		if err != nil {
			log.Fatal("单品创建失败:", err)
		}
		ids = append(ids, item.UID)
	}

	fmt.Printf("✅ 创建 %d 件单品\n", len(ids))
	return ids
}

func seedRecords(records *service.RecordService, itemIDs []string) {
	if len(itemIDs) == 0 {
		return
	}

	var count int64
	db.DB.Model(&db.OOTDRecord{}).Count(&count)
	if count > 0 {
		fmt.Println("穿搭记录已有数据，跳过创建")
		return
	}

	conditions := service.WeatherConditions()
	notes := []string{
		"大衣配短靴，通勤很顺手",
		"降温了，针织衫叠穿",
		"",
		"周末出门的轻松搭配",
	}

	now := time.Now()
	for i := 0; i < 4; i++ {
		date := now.AddDate(0, 0, -i*2)
		input := service.RecordInput{
			Date:      date,
			Condition: conditions[i%len(conditions)],
			Temp:      10 + i*3,
			ItemIDs:   []string{itemIDs[i%len(itemIDs)], itemIDs[(i+1)%len(itemIDs)]},
			Note:      notes[i%len(notes)],
		}
		if _, err := records.Save(input); err != nil {
			log.Fatal("记录创建失败:", err)
		}
	}

	fmt.Println("✅ 创建 4 条穿搭记录")
}

// placeholderImage 生成一个可直接展示的占位 data URL
func placeholderImage(tag string) string {
	svg := fmt.Sprintf("<svg xmlns='http://www.w3.org/2000/svg' width='200' height='200'><rect width='200' height='200' fill='%%23F2EBE3'/><text x='100' y='105' text-anchor='middle' font-size='20' fill='%%234A3F35'>%s</text></svg>", tag)
	return "data:image/svg+xml," + svg
}
