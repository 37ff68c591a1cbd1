package message

import (
	"context"
	"time"

	"pairchat/internal/dbmysql"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, id string) (*dbmysql.Message, error)
	ByClientID(ctx context.Context, conversationID, clientMessageID string) (*dbmysql.Message, error)
	Update(ctx context.Context, msg *dbmysql.Message) error
	LatestIn(ctx context.Context, conversationID string) (*dbmysql.Message, error)
	PageBefore(ctx context.Context, conversationID string, before *dbmysql.Message, limit int) ([]*dbmysql.Message, error)
	MarkReadUpTo(ctx context.Context, conversationID, senderID string, upTo *dbmysql.Message, at time.Time) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ByID(ctx context.Context, id string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) ByClientID(ctx context.Context, conversationID, clientMessageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND client_message_id = ?", conversationID, clientMessageID).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) Update(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

func (r *messageRepository) LatestIn(ctx context.Context, conversationID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// PageBefore returns up to limit messages strictly older than before (or the
// newest when before is nil), newest first. Ordering is created_at then id so
// same-millisecond inserts page deterministically.
func (r *messageRepository) PageBefore(ctx context.Context, conversationID string, before *dbmysql.Message, limit int) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID)

	if before != nil {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			before.CreatedAt, before.CreatedAt, before.ID)
	}

	var msgs []*dbmysql.Message
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// MarkReadUpTo stamps every unread message from senderID up to and including
// upTo. Already-read rows are left untouched so read_at is stable.
func (r *messageRepository) MarkReadUpTo(ctx context.Context, conversationID, senderID string, upTo *dbmysql.Message, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ? AND sender_id = ? AND read_at IS NULL", conversationID, senderID).
		Where("(created_at < ?) OR (created_at = ? AND id <= ?)",
			upTo.CreatedAt, upTo.CreatedAt, upTo.ID).
		Update("read_at", at)
	return result.RowsAffected, result.Error
}
