package models

import "time"

// Point is the per-user point ledger. LoginAmount is fed by daily
// check-ins, ReferralAmount by friend referral claims.
type Point struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	LoginAmount    int `gorm:"default:0" json:"login_amount"`
	ReferralAmount int `gorm:"default:0" json:"referral_amount"`

	// Passive income rate, raised by enhancement unlocks.
	ExtraProfitPerHour int `gorm:"default:0" json:"extra_profit_per_hour"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
