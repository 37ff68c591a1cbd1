package dbmysql

import (
	"time"
)

// Relationship status values. A rejected row is reused by a fresh request
// rather than inserting a second row for the same pair.
const (
	RelationPending  = "pending"
	RelationAccepted = "accepted"
	RelationRejected = "rejected"
)

type Relationship struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	RequesterID string    `gorm:"column:requester_id;size:36;not null;index:idx_relation_pair,unique" json:"requester_id"`
	RecipientID string    `gorm:"column:recipient_id;size:36;not null;index:idx_relation_pair,unique;index:idx_relation_recipient" json:"recipient_id"`
	Status      string    `gorm:"column:status;type:enum('pending','accepted','rejected');default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// OtherParty returns the counterpart of userID on this relationship.
func (r *Relationship) OtherParty(userID string) string {
	if r.RequesterID == userID {
		return r.RecipientID
	}
	return r.RequesterID
}
