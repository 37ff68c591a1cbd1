package dbmysql

import (
	"pairchat/internal/common"
)

// Payload converts a message row to its wire form. The stored body is never
// copied into the payload once the message has been removed.
func (m *Message) Payload() common.MessagePayload {
	return common.MessagePayload{
		ID:              m.ID,
		ConversationID:  m.ConversationID,
		SenderID:        m.SenderID,
		Body:            m.VisibleBody(),
		ClientMessageID: m.ClientMessageID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       m.DeletedAt,
		ReadAt:          m.ReadAt,
		IsEdited:        m.IsEdited(),
		IsDeleted:       m.IsDeleted(),
	}
}

// Payload converts a relationship row to its wire form.
func (r *Relationship) Payload() common.RelationPayload {
	return common.RelationPayload{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		RecipientID: r.RecipientID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
