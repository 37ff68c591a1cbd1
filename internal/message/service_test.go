package message

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pairchat/internal/common"
	"pairchat/internal/dbmysql"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type serviceMocks struct {
	repo          *MockRepository
	conversations *MockConversationStore
	pub           *common.MockPublisher
}

func newService(t *testing.T, clock common.Clock) (Service, serviceMocks, func()) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:          NewMockRepository(ctrl),
		conversations: NewMockConversationStore(ctrl),
		pub:           common.NewMockPublisher(ctrl),
	}
	return NewService(m.repo, m.conversations, m.pub, clock, Options{}), m, ctrl.Finish
}

func memberConv() *dbmysql.Conversation {
	return &dbmysql.Conversation{ID: "conv-1", UserLowID: "alice", UserHighID: "bob"}
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	t.Run("empty body rejected", func(t *testing.T) {
		svc, _, finish := newService(t, clock)
		defer finish()

		_, err := svc.Send(ctx, "conv-1", "alice", "   ", "client-1")
		require.ErrorIs(t, err, common.ErrBodyLength)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		svc, _, finish := newService(t, clock)
		defer finish()

		_, err := svc.Send(ctx, "conv-1", "alice", strings.Repeat("x", DefaultMaxBodyLength+1), "client-1")
		require.ErrorIs(t, err, common.ErrBodyLength)
	})

	t.Run("missing client message id rejected", func(t *testing.T) {
		svc, _, finish := newService(t, clock)
		defer finish()

		_, err := svc.Send(ctx, "conv-1", "alice", "hello", "")
		require.ErrorIs(t, err, common.ErrMissingFields)
	})

	t.Run("conversation not found", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Send(ctx, "conv-1", "alice", "hello", "client-1")
		require.ErrorIs(t, err, common.ErrConversationNotFound)
	})

	t.Run("non-member rejected", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)

		_, err := svc.Send(ctx, "conv-1", "mallory", "hello", "client-1")
		require.ErrorIs(t, err, common.ErrNotMember)
	})

	t.Run("creates, touches and publishes", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)
		m.repo.EXPECT().ByClientID(ctx, "conv-1", "client-1").Return(nil, gorm.ErrRecordNotFound)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *dbmysql.Message) error {
				require.NotEmpty(t, msg.ID)
				require.Equal(t, "conv-1", msg.ConversationID)
				require.Equal(t, "alice", msg.SenderID)
				require.Equal(t, "hello", msg.Body)
				require.Equal(t, now, msg.CreatedAt)
				return nil
			})
		m.conversations.EXPECT().TouchLastMessage(ctx, "conv-1", now).Return(nil)
		m.pub.EXPECT().ToConversation("conv-1", gomock.AssignableToTypeOf(common.MessageNewEvent{}))
		m.pub.EXPECT().ToUser("bob", gomock.AssignableToTypeOf(common.ConversationUpdatedEvent{})).Do(
			func(_ string, ev common.Event) {
				update := ev.(common.ConversationUpdatedEvent)
				assert.Equal(t, "conv-1", update.ConversationID)
				assert.Equal(t, now, update.LastMessageAt)
			})

		payload, err := svc.Send(ctx, "conv-1", "alice", "hello", "client-1")
		require.NoError(t, err)
		require.NotNil(t, payload.Body)
		assert.Equal(t, "hello", *payload.Body)
		assert.False(t, payload.IsEdited)
		assert.False(t, payload.IsDeleted)
	})

	t.Run("replay returns original without re-creating", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		existing := &dbmysql.Message{
			ID: "msg-1", ConversationID: "conv-1", SenderID: "alice",
			Body: "hello", ClientMessageID: "client-1",
			CreatedAt: now.Add(-time.Minute), UpdatedAt: now.Add(-time.Minute),
		}
		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)
		m.repo.EXPECT().ByClientID(ctx, "conv-1", "client-1").Return(existing, nil)
		// No Create, no TouchLastMessage, no publish.

		payload, err := svc.Send(ctx, "conv-1", "alice", "different body", "client-1")
		require.NoError(t, err)
		assert.Equal(t, "msg-1", payload.ID)
		assert.Equal(t, "hello", *payload.Body)
	})

	t.Run("lost create race re-reads winner", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		winner := &dbmysql.Message{
			ID: "msg-winner", ConversationID: "conv-1", SenderID: "alice",
			Body: "hello", ClientMessageID: "client-1",
			CreatedAt: now, UpdatedAt: now,
		}
		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)
		m.repo.EXPECT().ByClientID(ctx, "conv-1", "client-1").Return(nil, gorm.ErrRecordNotFound)
		m.repo.EXPECT().Create(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)
		m.repo.EXPECT().ByClientID(ctx, "conv-1", "client-1").Return(winner, nil)

		payload, err := svc.Send(ctx, "conv-1", "alice", "hello", "client-1")
		require.NoError(t, err)
		assert.Equal(t, "msg-winner", payload.ID)
	})
}

func TestMessageService_Edit(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ownMessage := func() *dbmysql.Message {
		return &dbmysql.Message{
			ID: "msg-1", ConversationID: "conv-1", SenderID: "alice",
			Body: "original", ClientMessageID: "client-1",
			CreatedAt: createdAt, UpdatedAt: createdAt,
		}
	}

	t.Run("not found", func(t *testing.T) {
		svc, m, finish := newService(t, fixedClock{now: createdAt})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Edit(ctx, "msg-1", "alice", "updated")
		require.ErrorIs(t, err, common.ErrMessageNotFound)
	})

	t.Run("only sender may edit", func(t *testing.T) {
		svc, m, finish := newService(t, fixedClock{now: createdAt})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(ownMessage(), nil)

		_, err := svc.Edit(ctx, "msg-1", "bob", "updated")
		require.ErrorIs(t, err, common.ErrNotSender)
	})

	t.Run("within window updates and publishes", func(t *testing.T) {
		now := createdAt.Add(DefaultEditWindow - time.Millisecond)
		svc, m, finish := newService(t, fixedClock{now: now})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(ownMessage(), nil)
		m.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *dbmysql.Message) error {
				require.Equal(t, "updated", msg.Body)
				require.Equal(t, now, msg.UpdatedAt)
				return nil
			})
		m.pub.EXPECT().ToConversation("conv-1", gomock.AssignableToTypeOf(common.MessageUpdatedEvent{}))

		payload, err := svc.Edit(ctx, "msg-1", "alice", "updated")
		require.NoError(t, err)
		assert.Equal(t, "updated", *payload.Body)
		assert.True(t, payload.IsEdited)
	})

	t.Run("window expired", func(t *testing.T) {
		now := createdAt.Add(DefaultEditWindow + time.Millisecond)
		svc, m, finish := newService(t, fixedClock{now: now})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(ownMessage(), nil)

		_, err := svc.Edit(ctx, "msg-1", "alice", "updated")
		require.ErrorIs(t, err, common.ErrEditWindowExpired)
		assert.Equal(t, common.CodeWindowExpired, common.CodeOf(err))
	})

	t.Run("deleted message cannot be edited", func(t *testing.T) {
		svc, m, finish := newService(t, fixedClock{now: createdAt})
		defer finish()

		deleted := ownMessage()
		deleted.DeletedAt = &createdAt
		m.repo.EXPECT().ByID(ctx, "msg-1").Return(deleted, nil)

		_, err := svc.Edit(ctx, "msg-1", "alice", "updated")
		require.ErrorIs(t, err, common.ErrAlreadyDeleted)
	})
}

func TestMessageService_Undo(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ownMessage := func() *dbmysql.Message {
		return &dbmysql.Message{
			ID: "msg-1", ConversationID: "conv-1", SenderID: "alice",
			Body: "original", ClientMessageID: "client-1",
			CreatedAt: createdAt, UpdatedAt: createdAt,
		}
	}

	t.Run("within window soft-deletes and publishes", func(t *testing.T) {
		now := createdAt.Add(DefaultUndoWindow - time.Millisecond)
		svc, m, finish := newService(t, fixedClock{now: now})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(ownMessage(), nil)
		m.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *dbmysql.Message) error {
				require.NotNil(t, msg.DeletedAt)
				require.Equal(t, now, *msg.DeletedAt)
				return nil
			})
		m.pub.EXPECT().ToConversation("conv-1", gomock.AssignableToTypeOf(common.MessageUpdatedEvent{})).Do(
			func(_ string, ev common.Event) {
				update := ev.(common.MessageUpdatedEvent)
				assert.True(t, update.Message.IsDeleted)
				assert.Nil(t, update.Message.Body)
			})

		payload, err := svc.Undo(ctx, "msg-1", "alice")
		require.NoError(t, err)
		assert.True(t, payload.IsDeleted)
		assert.Nil(t, payload.Body)
	})

	t.Run("window expired", func(t *testing.T) {
		now := createdAt.Add(DefaultUndoWindow + time.Millisecond)
		svc, m, finish := newService(t, fixedClock{now: now})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(ownMessage(), nil)

		_, err := svc.Undo(ctx, "msg-1", "alice")
		require.ErrorIs(t, err, common.ErrUndoWindowExpired)
	})

	t.Run("only sender may undo", func(t *testing.T) {
		svc, m, finish := newService(t, fixedClock{now: createdAt})
		defer finish()

		m.repo.EXPECT().ByID(ctx, "msg-1").Return(ownMessage(), nil)

		_, err := svc.Undo(ctx, "msg-1", "bob")
		require.ErrorIs(t, err, common.ErrNotSender)
	})

	t.Run("undo is terminal", func(t *testing.T) {
		svc, m, finish := newService(t, fixedClock{now: createdAt})
		defer finish()

		deleted := ownMessage()
		deleted.DeletedAt = &createdAt
		m.repo.EXPECT().ByID(ctx, "msg-1").Return(deleted, nil)

		_, err := svc.Undo(ctx, "msg-1", "alice")
		require.ErrorIs(t, err, common.ErrAlreadyDeleted)
	})
}

func TestMessageService_MarkRead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	t.Run("stamps counterpart messages and notifies author", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		upTo := &dbmysql.Message{
			ID: "msg-9", ConversationID: "conv-1", SenderID: "bob",
			CreatedAt: now.Add(-time.Minute),
		}
		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)
		m.repo.EXPECT().ByID(ctx, "msg-9").Return(upTo, nil)
		m.repo.EXPECT().MarkReadUpTo(ctx, "conv-1", "bob", upTo, now).Return(int64(3), nil)
		m.pub.EXPECT().ToUser("bob", common.ReadUpdateEvent{
			ConversationID: "conv-1",
			UpToMessageID:  "msg-9",
			At:             now,
		})

		require.NoError(t, svc.MarkRead(ctx, "conv-1", "alice", "msg-9"))
	})

	t.Run("non-member rejected", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)

		err := svc.MarkRead(ctx, "conv-1", "mallory", "msg-9")
		require.ErrorIs(t, err, common.ErrNotMember)
	})

	t.Run("marker from another conversation rejected", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		foreign := &dbmysql.Message{ID: "msg-9", ConversationID: "conv-2", SenderID: "bob"}
		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)
		m.repo.EXPECT().ByID(ctx, "msg-9").Return(foreign, nil)

		err := svc.MarkRead(ctx, "conv-1", "alice", "msg-9")
		require.ErrorIs(t, err, common.ErrMessageNotFound)
	})
}

func TestMessageService_Typing(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("relays to conversation channel", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)
		m.pub.EXPECT().ToConversation("conv-1", common.TypingUpdateEvent{
			ConversationID: "conv-1",
			UserID:         "alice",
			IsTyping:       true,
		})

		require.NoError(t, svc.Typing(ctx, "conv-1", "alice", true))
	})

	t.Run("non-member cannot signal", func(t *testing.T) {
		svc, m, finish := newService(t, clock)
		defer finish()

		m.conversations.EXPECT().ByID(ctx, "conv-1").Return(memberConv(), nil)

		err := svc.Typing(ctx, "conv-1", "mallory", true)
		require.ErrorIs(t, err, common.ErrNotMember)
	})
}
