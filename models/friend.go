package models

import "time"

// Friendship status values.
const (
	FriendStatusPending  = "pending"
	FriendStatusActive   = "active"
	FriendStatusRejected = "rejected"
)

// Friend links a referring user (sender) with the referred user
// (receiver). One row per unordered pair.
type Friend struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SenderID   uint   `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint   `gorm:"index;not null" json:"receiver_id"`
	Status     string `gorm:"size:16;default:pending" json:"status"`

	// HasClaimed flips when the sender collects the referral reward.
	HasClaimed bool `gorm:"default:false" json:"has_claimed"`

	CustomLogs JSONMap   `gorm:"type:json" json:"custom_logs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`
}
