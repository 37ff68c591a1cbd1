package common

import "time"

// Event names pushed to clients.
const (
	EventConnectionRequest   = "connection:request"
	EventConnectionResponse  = "connection:response"
	EventMessageNew          = "message:new"
	EventMessageUpdated      = "message:updated"
	EventConversationUpdated = "conversation:updated"
	EventPresenceUpdate      = "presence:update"
	EventTypingUpdate        = "typing:update"
	EventReadUpdate          = "read:update"
)

// RelationPayload is the wire form of a relationship row.
type RelationPayload struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requesterId"`
	RecipientID string    `json:"recipientId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MessagePayload is the wire form of a message. Body is nil once the message
// has been removed, for every reader including the sender.
type MessagePayload struct {
	ID              string     `json:"id"`
	ConversationID  string     `json:"conversationId"`
	SenderID        string     `json:"senderId"`
	Body            *string    `json:"body"`
	ClientMessageID string     `json:"clientMessageId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deletedAt"`
	ReadAt          *time.Time `json:"readAt"`
	IsEdited        bool       `json:"isEdited"`
	IsDeleted       bool       `json:"isDeleted"`
}

// Event is the closed set of push payloads. Each variant knows its own wire
// name so a handler switch stays exhaustively checkable.
type Event interface {
	EventName() string
}

type ConnectionRequestEvent struct {
	Connection RelationPayload `json:"connection"`
}

func (ConnectionRequestEvent) EventName() string { return EventConnectionRequest }

type ConnectionResponseEvent struct {
	Connection RelationPayload `json:"connection"`
}

func (ConnectionResponseEvent) EventName() string { return EventConnectionResponse }

type MessageNewEvent struct {
	Message MessagePayload `json:"message"`
}

func (MessageNewEvent) EventName() string { return EventMessageNew }

type MessageUpdatedEvent struct {
	Message MessagePayload `json:"message"`
}

func (MessageUpdatedEvent) EventName() string { return EventMessageUpdated }

type ConversationUpdatedEvent struct {
	ConversationID string         `json:"conversationId"`
	LastMessage    MessagePayload `json:"lastMessage"`
	LastMessageAt  time.Time      `json:"lastMessageAt"`
}

func (ConversationUpdatedEvent) EventName() string { return EventConversationUpdated }

type PresenceUpdateEvent struct {
	UserID     string     `json:"userId"`
	Online     bool       `json:"online"`
	LastSeenAt *time.Time `json:"lastSeenAt"`
}

func (PresenceUpdateEvent) EventName() string { return EventPresenceUpdate }

type TypingUpdateEvent struct {
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
	IsTyping       bool   `json:"isTyping"`
}

func (TypingUpdateEvent) EventName() string { return EventTypingUpdate }

type ReadUpdateEvent struct {
	ConversationID string    `json:"conversationId"`
	UpToMessageID  string    `json:"upToMessageId"`
	At             time.Time `json:"at"`
}

func (ReadUpdateEvent) EventName() string { return EventReadUpdate }
