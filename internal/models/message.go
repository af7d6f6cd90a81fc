package models

import "time"

// Message is a chat-room message. Rooms are ad-hoc names; no membership is
// tracked.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Room      string    `gorm:"size:64;not null;index" json:"room"`
	Username  string    `gorm:"size:64;not null" json:"username"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}
