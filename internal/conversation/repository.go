package conversation

import (
	"context"
	"time"

	"pairchat/internal/dbmysql"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, conv *dbmysql.Conversation) error
	ByID(ctx context.Context, id string) (*dbmysql.Conversation, error)
	ByPair(ctx context.Context, lowID, highID string) (*dbmysql.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error)
	TouchLastMessage(ctx context.Context, id string, at time.Time) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conv *dbmysql.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *conversationRepository) ByID(ctx context.Context, id string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) ByPair(ctx context.Context, lowID, highID string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", lowID, highID).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListByUser orders by last activity; lastMessageAt is the only ordering
// signal the conversation list exposes.
func (r *conversationRepository) ListByUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error) {
	var convs []*dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&convs).Error
	return convs, err
}

func (r *conversationRepository) TouchLastMessage(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Where("id = ?", id).
		Update("last_message_at", at).Error
}
