package models

import "time"

// SocialMedia tracks which campaign platforms a user has linked and the
// follow/view actions already verified for reward purposes.
type SocialMedia struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	YoutubeID        string     `gorm:"size:100" json:"youtube_id"`
	YoutubeFollowing bool       `gorm:"default:false" json:"youtube_following"`
	YoutubeViewed    bool       `gorm:"default:false" json:"youtube_viewed"`
	YoutubeViewDate  *time.Time `json:"youtube_view_date"`

	FacebookID           string     `gorm:"size:100" json:"facebook_id"`
	FacebookFollowing    bool       `gorm:"default:false" json:"facebook_following"`
	FacebookFollowedDate *time.Time `json:"facebook_followed_date"`

	InstagramID                      string     `gorm:"size:100" json:"instagram_id"`
	InstagramFollowing               bool       `gorm:"default:false" json:"instagram_following"`
	InstagramFollowTriggerVerifyDate *time.Time `json:"instagram_follow_trigger_verify_date"`
	InstagramFollowedDate            *time.Time `json:"instagram_followed_date"`
	InstagramTagged                  bool       `gorm:"default:false" json:"instagram_tagged"`
	InstagramTaggedDate              *time.Time `json:"instagram_tagged_date"`
	InstagramReposted                bool       `gorm:"default:false" json:"instagram_reposted"`
	InstagramRepostedDate            *time.Time `json:"instagram_reposted_date"`

	TelegramID           string     `gorm:"size:100" json:"telegram_id"`
	TelegramFollowing    bool       `gorm:"default:false" json:"telegram_following"`
	TelegramFollowedDate *time.Time `json:"telegram_followed_date"`

	XID           string     `gorm:"size:100" json:"x_id"`
	XFollowing    bool       `gorm:"default:false" json:"x_following"`
	XFollowedDate *time.Time `json:"x_followed_date"`

	DiscordID           string     `gorm:"size:100" json:"discord_id"`
	DiscordFollowing    bool       `gorm:"default:false" json:"discord_following"`
	DiscordFollowedDate *time.Time `json:"discord_followed_date"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
