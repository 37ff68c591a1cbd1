package dbmysql

import (
	"time"
)

// Message is append-only. The unique index over
// (conversation_id, client_message_id) makes the send path idempotent under
// retries, and (conversation_id, created_at) backs cursor pagination.
// DeletedAt is a plain nullable timestamp, not gorm's soft-delete type:
// removed rows must stay readable so their metadata survives, only the body
// is hidden from clients.
type Message struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	ConversationID  string     `gorm:"column:conversation_id;size:36;not null;index:idx_message_dedupe,unique;index:idx_message_conv_created,priority:1" json:"conversation_id"`
	SenderID        string     `gorm:"column:sender_id;size:36;not null;index" json:"sender_id"`
	Body            string     `gorm:"column:body;type:text" json:"-"`
	ClientMessageID string     `gorm:"column:client_message_id;size:64;not null;index:idx_message_dedupe,unique" json:"client_message_id"`
	CreatedAt       time.Time  `gorm:"column:created_at;index:idx_message_conv_created,priority:2" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`
	ReadAt          *time.Time `gorm:"column:read_at" json:"read_at"`
	DeletedAt       *time.Time `gorm:"column:deleted_at" json:"deleted_at"`
}

// IsDeleted reports whether the message has been removed by its sender.
func (m *Message) IsDeleted() bool { return m.DeletedAt != nil }

// IsEdited is a display signal only: an active message whose body changed
// after creation.
func (m *Message) IsEdited() bool {
	return m.DeletedAt == nil && m.UpdatedAt.After(m.CreatedAt)
}

// VisibleBody is the body exposed to clients, nil once the message is removed.
func (m *Message) VisibleBody() *string {
	if m.DeletedAt != nil {
		return nil
	}
	body := m.Body
	return &body
}
