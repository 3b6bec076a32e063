package models

import "time"

// GameCharacter is a playable golfer owned by a user. A user may own
// several characters; each has exactly one stats row.
type GameCharacter struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Gender    int    `gorm:"default:1" json:"gender"`
	Title     string `gorm:"size:100;not null" json:"title"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Stats *GameCharacterStats `gorm:"foreignKey:GameCharacterID" json:"stats,omitempty"`
}

// GameCharacterStats holds the tunable attributes of one character.
type GameCharacterStats struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	GameCharacterID uint `gorm:"uniqueIndex;not null" json:"game_character_id"`

	Level     int `gorm:"default:1" json:"level"`
	ExpPoints int `gorm:"default:0" json:"exp_points"`
	Stamina   int `gorm:"default:0" json:"stamina"`
	Recovery  int `gorm:"default:0" json:"recovery"`
	Condition int `gorm:"default:0" json:"condition"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
