package models

import "time"

// Record actions.
const (
	RecordActionGet         = "GET"
	RecordActionList        = "LIST"
	RecordActionCreate      = "CREATE"
	RecordActionUpdate      = "UPDATE"
	RecordActionBatchUpdate = "BATCH_UPDATE"
	RecordActionDelete      = "DELETE"
)

// Record tables.
const (
	RecordTableUser          = "USER"
	RecordTablePoint         = "POINT"
	RecordTableActivity      = "ACTIVITY"
	RecordTableFriend        = "FRIEND"
	RecordTableSocialMedia   = "SOCIAL_MEDIA"
	RecordTableGameCharacter = "GAME_CHARACTER"
	RecordTableRecord        = "RECORD"
)

// Record is the audit trail row written after every mutating API call.
type Record struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index" json:"user_id"`
	Action  string `gorm:"size:16;not null" json:"action"`
	Table   string `gorm:"size:32;not null;column:table_name" json:"table"`
	TableID uint   `json:"table_id"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
