package models

import "time"

// Activity keeps the login bookkeeping for one user. Exactly one row per
// user; only the check-in evaluator mutates the login fields.
type Activity struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// LoggedIn means the user has claimed at least one daily check-in.
	LoggedIn    bool `gorm:"default:false" json:"logged_in"`
	LoginStreak int  `gorm:"default:0" json:"login_streak"`
	TotalLogins int  `gorm:"default:0" json:"total_logins"`

	// LastLoginTime is nil until the first successful check-in.
	LastLoginTime  *time.Time `json:"last_login_time"`
	LastActionTime time.Time  `json:"last_action_time"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
