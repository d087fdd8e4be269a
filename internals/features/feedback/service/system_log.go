package service

import (
	"log"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/feedback/model"
)

// LogEvent menulis satu event ke system_logs. Best effort: kegagalan
// cuma di-log, tidak pernah menggagalkan operasi pemanggil.
func LogEvent(db *gorm.DB, level, source, message string, details map[string]any) {
	entry := model.SystemLogModel{
		SystemLogLevel:   level,
		SystemLogSource:  source,
		SystemLogMessage: message,
	}
	if details != nil {
		if raw, err := sonic.Marshal(details); err == nil {
			entry.SystemLogDetails = datatypes.JSON(raw)
		}
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] tulis system log: %v", err)
	}
}
