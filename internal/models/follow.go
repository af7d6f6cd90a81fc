package models

import "time"

// Follow is a directed edge meaning UserID receives AuthorID's posts in
// their follow feed. The composite unique index is the source of truth for
// the at-most-one-edge invariant; concurrent follow calls race on it, not on
// an application-level existence check.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}

// FollowState reports the edge state after a follow or unfollow mutation.
type FollowState struct {
	NowFollowing bool `json:"now_following"`
}
