package dbmysql

import (
	"time"
)

// Conversation stores the canonical pairing of two identities. The unique
// index over (user_low_id, user_high_id) enforces at-most-one row per
// unordered pair regardless of which side asked first.
type Conversation struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserLowID     string    `gorm:"column:user_low_id;size:36;not null;index:idx_conversation_pair,unique" json:"user_low_id"`
	UserHighID    string    `gorm:"column:user_high_id;size:36;not null;index:idx_conversation_pair,unique" json:"user_high_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastMessageAt time.Time `gorm:"column:last_message_at;index" json:"last_message_at"`
}

// HasMember reports whether userID participates in this conversation.
func (c *Conversation) HasMember(userID string) bool {
	return c.UserLowID == userID || c.UserHighID == userID
}

// OtherMember returns the counterpart of userID.
func (c *Conversation) OtherMember(userID string) string {
	if c.UserLowID == userID {
		return c.UserHighID
	}
	return c.UserLowID
}

// CanonicalPair orders two identity ids so a pair always maps to one row.
func CanonicalPair(idA, idB string) (low, high string) {
	if idA < idB {
		return idA, idB
	}
	return idB, idA
}
