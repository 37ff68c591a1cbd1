package message

import (
	"context"
	"errors"
	"time"

	"pairchat/internal/common"
	"pairchat/internal/dbmysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationStore is the slice of the conversation repository the message
// lifecycle needs: membership lookup and the lastMessageAt advance.
type ConversationStore interface {
	ByID(ctx context.Context, id string) (*dbmysql.Conversation, error)
	TouchLastMessage(ctx context.Context, id string, at time.Time) error
}

type Service interface {
	Send(ctx context.Context, conversationID, senderID, body, clientMessageID string) (*common.MessagePayload, error)
	Edit(ctx context.Context, messageID, actorID, body string) (*common.MessagePayload, error)
	Undo(ctx context.Context, messageID, actorID string) (*common.MessagePayload, error)
	MarkRead(ctx context.Context, conversationID, actorID, upToMessageID string) error
	Typing(ctx context.Context, conversationID, actorID string, isTyping bool) error
}

// Options tune the lifecycle policy; zero values fall back to the defaults.
type Options struct {
	EditWindow    time.Duration
	UndoWindow    time.Duration
	MaxBodyLength int
}

type messageService struct {
	repo          Repository
	conversations ConversationStore
	pub           common.Publisher
	clock         common.Clock
	editWindow    time.Duration
	undoWindow    time.Duration
	maxBodyLength int
}

func NewService(repo Repository, conversations ConversationStore, pub common.Publisher, clock common.Clock, opts Options) Service {
	if opts.EditWindow <= 0 {
		opts.EditWindow = DefaultEditWindow
	}
	if opts.UndoWindow <= 0 {
		opts.UndoWindow = DefaultUndoWindow
	}
	if opts.MaxBodyLength <= 0 {
		opts.MaxBodyLength = DefaultMaxBodyLength
	}
	if clock == nil {
		clock = common.SystemClock
	}
	return &messageService{
		repo:          repo,
		conversations: conversations,
		pub:           pub,
		clock:         clock,
		editWindow:    opts.EditWindow,
		undoWindow:    opts.UndoWindow,
		maxBodyLength: opts.MaxBodyLength,
	}
}

// Send persists a message exactly once per (conversation, clientMessageId).
// A replayed send returns the original record instead of failing, which is
// what makes retry-after-timeout safe for clients. The canonical record is
// returned synchronously so the caller can reconcile its optimistic entry
// even if the push event is lost.
func (s *messageService) Send(ctx context.Context, conversationID, senderID, body, clientMessageID string) (*common.MessagePayload, error) {
	if err := common.ValidateID(conversationID); err != nil {
		return nil, err
	}
	if err := common.ValidateID(clientMessageID); err != nil {
		return nil, err
	}
	if err := common.ValidateMessageBody(body, s.maxBodyLength); err != nil {
		return nil, err
	}

	conv, err := s.memberConversation(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}

	// Fast path for replays: the record already exists.
	if existing, err := s.repo.ByClientID(ctx, conversationID, clientMessageID); err == nil {
		payload := existing.Payload()
		return &payload, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	msg := &dbmysql.Message{
		ID:              uuid.NewString(),
		ConversationID:  conversationID,
		SenderID:        senderID,
		Body:            body,
		ClientMessageID: clientMessageID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		// Concurrent retry hit the dedupe index first; its row is canonical.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, lookupErr := s.repo.ByClientID(ctx, conversationID, clientMessageID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			payload := existing.Payload()
			return &payload, nil
		}
		return nil, err
	}

	if err := s.conversations.TouchLastMessage(ctx, conversationID, msg.CreatedAt); err != nil {
		return nil, err
	}

	payload := msg.Payload()
	s.pub.ToConversation(conversationID, common.MessageNewEvent{Message: payload})
	s.pub.ToUser(conv.OtherMember(senderID), common.ConversationUpdatedEvent{
		ConversationID: conversationID,
		LastMessage:    payload,
		LastMessageAt:  msg.CreatedAt,
	})

	return &payload, nil
}

// Edit replaces the body of an active message within the edit window. Edits
// may repeat; each one just refreshes body and updatedAt.
func (s *messageService) Edit(ctx context.Context, messageID, actorID, body string) (*common.MessagePayload, error) {
	if err := common.ValidateMessageBody(body, s.maxBodyLength); err != nil {
		return nil, err
	}

	msg, err := s.mutableMessage(ctx, messageID, actorID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !WithinWindow(now, msg.CreatedAt, s.editWindow) {
		return nil, common.ErrEditWindowExpired
	}

	msg.Body = body
	msg.UpdatedAt = now
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}

	payload := msg.Payload()
	s.pub.ToConversation(msg.ConversationID, common.MessageUpdatedEvent{Message: payload})

	return &payload, nil
}

// Undo soft-deletes a message within the undo window. Deleted is terminal:
// the row stays for audit but its body is never exposed again.
func (s *messageService) Undo(ctx context.Context, messageID, actorID string) (*common.MessagePayload, error) {
	msg, err := s.mutableMessage(ctx, messageID, actorID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !WithinWindow(now, msg.CreatedAt, s.undoWindow) {
		return nil, common.ErrUndoWindowExpired
	}

	msg.DeletedAt = &now
	msg.UpdatedAt = now
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}

	payload := msg.Payload()
	s.pub.ToConversation(msg.ConversationID, common.MessageUpdatedEvent{Message: payload})

	return &payload, nil
}

// MarkRead stamps the counterpart's messages as read up to and including
// upToMessageID, then tells the counterpart. Read state is per-recipient, so
// the receipt goes to the author of the messages, not the reader.
func (s *messageService) MarkRead(ctx context.Context, conversationID, actorID, upToMessageID string) error {
	if err := common.ValidateID(upToMessageID); err != nil {
		return err
	}

	conv, err := s.memberConversation(ctx, conversationID, actorID)
	if err != nil {
		return err
	}

	upTo, err := s.repo.ByID(ctx, upToMessageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrMessageNotFound
		}
		return err
	}
	if upTo.ConversationID != conversationID {
		return common.ErrMessageNotFound
	}

	other := conv.OtherMember(actorID)
	now := s.clock.Now()

	if _, err := s.repo.MarkReadUpTo(ctx, conversationID, other, upTo, now); err != nil {
		return err
	}

	s.pub.ToUser(other, common.ReadUpdateEvent{
		ConversationID: conversationID,
		UpToMessageID:  upToMessageID,
		At:             now,
	})

	return nil
}

// Typing relays an ephemeral indicator to the conversation channel. Nothing
// is persisted and no stop event is guaranteed; receivers time out on their
// own.
func (s *messageService) Typing(ctx context.Context, conversationID, actorID string, isTyping bool) error {
	if _, err := s.memberConversation(ctx, conversationID, actorID); err != nil {
		return err
	}

	s.pub.ToConversation(conversationID, common.TypingUpdateEvent{
		ConversationID: conversationID,
		UserID:         actorID,
		IsTyping:       isTyping,
	})
	return nil
}

func (s *messageService) memberConversation(ctx context.Context, conversationID, actorID string) (*dbmysql.Conversation, error) {
	conv, err := s.conversations.ByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	if !conv.HasMember(actorID) {
		return nil, common.ErrNotMember
	}
	return conv, nil
}

func (s *messageService) mutableMessage(ctx context.Context, messageID, actorID string) (*dbmysql.Message, error) {
	msg, err := s.repo.ByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMessageNotFound
		}
		return nil, err
	}
	if msg.SenderID != actorID {
		return nil, common.ErrNotSender
	}
	if msg.IsDeleted() {
		return nil, common.ErrAlreadyDeleted
	}
	return msg, nil
}
