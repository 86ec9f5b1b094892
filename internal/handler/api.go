package handler

import (
	"github.com/ootdnote/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	wardrobe    *service.WardrobeService
	records     *service.RecordService
	preferences *service.PreferenceService
	reports     *service.ReportService
	notifier    *service.ChangeNotifier
	accessUser  string
	accessPass  string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, accessUser, accessPassword string) *API {
	notifier := service.NewChangeNotifier()
	wardrobe := service.NewWardrobeService(db, notifier)
	records := service.NewRecordService(db, notifier)

	return &API{
		db:          db,
		wardrobe:    wardrobe,
		records:     records,
		preferences: service.NewPreferenceService(db, notifier),
		reports:     service.NewReportService(wardrobe, records),
		notifier:    notifier,
		accessUser:  accessUser,
		accessPass:  accessPassword,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// AuthEnabled 报告是否配置了访问密码。未配置时服务免登录运行。
func (a *API) AuthEnabled() bool {
	return a.accessPass != ""
}
