package relation

import (
	"context"
	"errors"

	"pairchat/internal/common"
	"pairchat/internal/dbmysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actions a recipient may take on a pending request.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type Service interface {
	Request(ctx context.Context, requesterID, recipientID string) (*dbmysql.Relationship, error)
	Respond(ctx context.Context, connectionID, actorID, action string) (*dbmysql.Relationship, error)
	List(ctx context.Context, userID string) (accepted, pendingIncoming []*dbmysql.Relationship, err error)
}

type relationService struct {
	repo Repository
	pub  common.Publisher
}

func NewService(repo Repository, pub common.Publisher) Service {
	return &relationService{repo: repo, pub: pub}
}

// Request creates a pending request, or revives a previously rejected row for
// the same pair. An active row (pending or accepted) blocks a new request.
func (s *relationService) Request(ctx context.Context, requesterID, recipientID string) (*dbmysql.Relationship, error) {
	if err := common.ValidateID(requesterID); err != nil {
		return nil, err
	}
	if err := common.ValidateID(recipientID); err != nil {
		return nil, err
	}
	if requesterID == recipientID {
		return nil, common.ErrSelfRequest
	}

	existing, err := s.repo.ByPair(ctx, requesterID, recipientID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rel *dbmysql.Relationship
	switch {
	case existing == nil:
		rel = &dbmysql.Relationship{
			ID:          uuid.NewString(),
			RequesterID: requesterID,
			RecipientID: recipientID,
			Status:      dbmysql.RelationPending,
		}
		if err := s.repo.Create(ctx, rel); err != nil {
			// Lost a create race for the same direction: the other attempt won.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, common.ErrRequestPending
			}
			return nil, err
		}

	case existing.Status == dbmysql.RelationAccepted:
		return nil, common.ErrAlreadyAccepted

	case existing.Status == dbmysql.RelationPending:
		return nil, common.ErrRequestPending

	default: // rejected: reuse the row, possibly flipping direction
		existing.RequesterID = requesterID
		existing.RecipientID = recipientID
		existing.Status = dbmysql.RelationPending
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		rel = existing
	}

	s.pub.ToUser(recipientID, common.ConnectionRequestEvent{Connection: rel.Payload()})

	return rel, nil
}

// Respond lets the recipient accept or reject a pending request.
func (s *relationService) Respond(ctx context.Context, connectionID, actorID, action string) (*dbmysql.Relationship, error) {
	if action != ActionAccept && action != ActionReject {
		return nil, common.ErrInvalidAction
	}

	rel, err := s.repo.ByID(ctx, connectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrRelationNotFound
		}
		return nil, err
	}

	if rel.RecipientID != actorID {
		return nil, common.ErrNotRecipient
	}
	if rel.Status != dbmysql.RelationPending {
		return nil, common.ErrAlreadyResponded
	}

	if action == ActionAccept {
		rel.Status = dbmysql.RelationAccepted
	} else {
		rel.Status = dbmysql.RelationRejected
	}

	if err := s.repo.Update(ctx, rel); err != nil {
		return nil, err
	}

	s.pub.ToUser(rel.RequesterID, common.ConnectionResponseEvent{Connection: rel.Payload()})

	return rel, nil
}

func (s *relationService) List(ctx context.Context, userID string) ([]*dbmysql.Relationship, []*dbmysql.Relationship, error) {
	accepted, err := s.repo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	pending, err := s.repo.ListPendingIncoming(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return accepted, pending, nil
}
