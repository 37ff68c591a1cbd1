package relation

import (
	"context"

	"pairchat/internal/dbmysql"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rel *dbmysql.Relationship) error
	ByID(ctx context.Context, id string) (*dbmysql.Relationship, error)
	ByPair(ctx context.Context, userA, userB string) (*dbmysql.Relationship, error)
	Update(ctx context.Context, rel *dbmysql.Relationship) error
	ListAccepted(ctx context.Context, userID string) ([]*dbmysql.Relationship, error)
	ListPendingIncoming(ctx context.Context, userID string) ([]*dbmysql.Relationship, error)
	IsAccepted(ctx context.Context, userA, userB string) (bool, error)
	AcceptedPeerIDs(ctx context.Context, userID string) ([]string, error)
}

type relationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &relationRepository{db: db}
}

func (r *relationRepository) Create(ctx context.Context, rel *dbmysql.Relationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *relationRepository) ByID(ctx context.Context, id string) (*dbmysql.Relationship, error) {
	var rel dbmysql.Relationship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// ByPair finds the single row for an unordered pair, whichever side requested.
func (r *relationRepository) ByPair(ctx context.Context, userA, userB string) (*dbmysql.Relationship, error) {
	var rel dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationRepository) Update(ctx context.Context, rel *dbmysql.Relationship) error {
	return r.db.WithContext(ctx).Save(rel).Error
}

func (r *relationRepository) ListAccepted(ctx context.Context, userID string) ([]*dbmysql.Relationship, error) {
	var rels []*dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?",
			userID, userID, dbmysql.RelationAccepted).
		Order("updated_at DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) ListPendingIncoming(ctx context.Context, userID string) ([]*dbmysql.Relationship, error) {
	var rels []*dbmysql.Relationship
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", userID, dbmysql.RelationPending).
		Order("created_at DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) IsAccepted(ctx context.Context, userA, userB string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("((requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)) AND status = ?",
			userA, userB, userB, userA, dbmysql.RelationAccepted).
		Count(&count).Error
	return count > 0, err
}

// AcceptedPeerIDs returns the counterpart id of every accepted relationship,
// the fan-out set for presence events.
func (r *relationRepository) AcceptedPeerIDs(ctx context.Context, userID string) ([]string, error) {
	rels, err := r.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	peers := make([]string, 0, len(rels))
	for _, rel := range rels {
		peers = append(peers, rel.OtherParty(userID))
	}
	return peers, nil
}
