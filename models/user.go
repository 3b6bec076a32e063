package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a Telegram mini-app player. Identity comes from
// Telegram only; there is no local credential.
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Username   string `gorm:"size:100;not null" json:"username"`
	TelegramID string `gorm:"size:100;uniqueIndex;not null" json:"telegram_id"`
	ChatID     string `gorm:"size:100" json:"chat_id"`
	StartParam string `gorm:"size:100" json:"start_param"`

	TokenBalance  int    `gorm:"default:0" json:"token_balance"`
	Active        bool   `gorm:"default:true" json:"active"`
	Admin         bool   `gorm:"default:false" json:"admin"`
	Premium       bool   `gorm:"default:false" json:"premium"`
	WalletAddress string `gorm:"size:100;index" json:"wallet_address"`
	Skin          string `gorm:"size:100;default:Default" json:"skin"`

	InGameItems JSONMap `gorm:"type:json" json:"in_game_items"`

	// marketing
	Location    string `gorm:"size:100" json:"location"`
	Nationality string `gorm:"size:100" json:"nationality"`
	Age         *int   `json:"age"`
	Gender      string `gorm:"size:100" json:"gender"`
	Email       string `gorm:"size:100" json:"email"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Point          *Point          `json:"-"`
	Activity       *Activity       `json:"-"`
	SocialMedia    *SocialMedia    `json:"-"`
	GameCharacters []GameCharacter `json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
