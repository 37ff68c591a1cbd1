package conversation

import (
	"context"
	"errors"
	"time"

	"pairchat/internal/common"
	"pairchat/internal/dbmysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagination bounds for message history.
const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// ConnectionChecker gates conversation creation on an accepted relationship.
// Implemented by the relation repository.
type ConnectionChecker interface {
	IsAccepted(ctx context.Context, userA, userB string) (bool, error)
}

// MessageSource supplies message rows for summaries and history pages.
// Implemented by the message repository.
type MessageSource interface {
	ByID(ctx context.Context, id string) (*dbmysql.Message, error)
	LatestIn(ctx context.Context, conversationID string) (*dbmysql.Message, error)
	PageBefore(ctx context.Context, conversationID string, before *dbmysql.Message, limit int) ([]*dbmysql.Message, error)
}

// Summary is one row of the conversation list: the counterpart and a
// deleted-aware preview of the latest message.
type Summary struct {
	ID            string                 `json:"id"`
	OtherUserID   string                 `json:"otherUserId"`
	LastMessage   *common.MessagePayload `json:"lastMessage"`
	LastMessageAt time.Time              `json:"lastMessageAt"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// MessagePage is a slice of history in ascending chronological order.
type MessagePage struct {
	Messages   []common.MessagePayload `json:"messages"`
	HasMore    bool                    `json:"hasMore"`
	NextCursor *string                 `json:"nextCursor"`
}

type Service interface {
	GetOrCreate(ctx context.Context, actorID, otherID string) (*dbmysql.Conversation, error)
	List(ctx context.Context, userID string) ([]Summary, error)
	Messages(ctx context.Context, conversationID, actorID, cursor string, limit int) (*MessagePage, error)
}

type conversationService struct {
	repo        Repository
	connections ConnectionChecker
	messages    MessageSource
}

func NewService(repo Repository, connections ConnectionChecker, messages MessageSource) Service {
	return &conversationService{repo: repo, connections: connections, messages: messages}
}

// GetOrCreate returns the single conversation for an unordered pair, creating
// it on first use. Safe under concurrent calls: the unique index on the
// canonical pair makes one insert win and the loser re-reads the winner's row.
func (s *conversationService) GetOrCreate(ctx context.Context, actorID, otherID string) (*dbmysql.Conversation, error) {
	if err := common.ValidateID(actorID); err != nil {
		return nil, err
	}
	if err := common.ValidateID(otherID); err != nil {
		return nil, err
	}
	if actorID == otherID {
		return nil, common.ErrSelfConversation
	}

	accepted, err := s.connections.IsAccepted(ctx, actorID, otherID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, common.ErrNotConnected
	}

	low, high := dbmysql.CanonicalPair(actorID, otherID)

	conv, err := s.repo.ByPair(ctx, low, high)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	conv = &dbmysql.Conversation{
		ID:            uuid.NewString(),
		UserLowID:     low,
		UserHighID:    high,
		CreatedAt:     now,
		LastMessageAt: now,
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.repo.ByPair(ctx, low, high)
		}
		return nil, err
	}
	return conv, nil
}

func (s *conversationService) List(ctx context.Context, userID string) ([]Summary, error) {
	convs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(convs))
	for _, conv := range convs {
		summary := Summary{
			ID:            conv.ID,
			OtherUserID:   conv.OtherMember(userID),
			LastMessageAt: conv.LastMessageAt,
			CreatedAt:     conv.CreatedAt,
		}

		last, err := s.messages.LatestIn(ctx, conv.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if last != nil {
			payload := last.Payload()
			summary.LastMessage = &payload
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Messages returns up to limit messages older than cursor (newest first when
// cursor is absent), presented in ascending order for display. The cursor is a
// message id, so the result set stays correct under concurrent inserts.
func (s *conversationService) Messages(ctx context.Context, conversationID, actorID, cursor string, limit int) (*MessagePage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	conv, err := s.repo.ByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	if !conv.HasMember(actorID) {
		return nil, common.ErrNotMember
	}

	var before *dbmysql.Message
	if cursor != "" {
		before, err = s.messages.ByID(ctx, cursor)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrBadCursor
			}
			return nil, err
		}
		if before.ConversationID != conversationID {
			return nil, common.ErrBadCursor
		}
	}

	// Fetch one extra row to learn whether an older page exists.
	rows, err := s.messages.PageBefore(ctx, conversationID, before, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	// rows arrive newest-first; flip to chronological order for display.
	page := &MessagePage{
		Messages: make([]common.MessagePayload, 0, len(rows)),
		HasMore:  hasMore,
	}
	for i := len(rows) - 1; i >= 0; i-- {
		page.Messages = append(page.Messages, rows[i].Payload())
	}

	if hasMore && len(page.Messages) > 0 {
		oldest := page.Messages[0].ID
		page.NextCursor = &oldest
	}
	return page, nil
}
