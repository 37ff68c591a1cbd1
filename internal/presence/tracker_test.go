package presence

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairchat/internal/common"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type trackerMocks struct {
	relations *MockAcceptedLister
	lastSeen  *MockLastSeenStore
	pub       *common.MockPublisher
}

func newTracker(t *testing.T, clock common.Clock) (*Tracker, *Registry, trackerMocks, func()) {
	ctrl := gomock.NewController(t)
	m := trackerMocks{
		relations: NewMockAcceptedLister(ctrl),
		lastSeen:  NewMockLastSeenStore(ctrl),
		pub:       common.NewMockPublisher(ctrl),
	}
	registry := NewRegistry()
	return NewTracker(registry, m.relations, m.lastSeen, m.pub, clock), registry, m, ctrl.Finish
}

func TestTracker_Connected(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first connection notifies accepted relations only", func(t *testing.T) {
		tracker, _, m, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		m.relations.EXPECT().AcceptedPeerIDs(ctx, "alice").Return([]string{"bob", "carol"}, nil)
		online := common.PresenceUpdateEvent{UserID: "alice", Online: true}
		m.pub.EXPECT().ToUser("bob", online)
		m.pub.EXPECT().ToUser("carol", online)

		tracker.Connected(ctx, "alice", "conn-1")
	})

	t.Run("second device emits nothing", func(t *testing.T) {
		tracker, _, m, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		m.relations.EXPECT().AcceptedPeerIDs(ctx, "alice").Return([]string{"bob"}, nil)
		m.pub.EXPECT().ToUser("bob", gomock.Any())

		tracker.Connected(ctx, "alice", "conn-1")
		tracker.Connected(ctx, "alice", "conn-2")
	})
}

func TestTracker_Disconnected(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("last disconnect records last seen and notifies", func(t *testing.T) {
		tracker, registry, m, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		registry.Register("alice", "conn-1")

		m.lastSeen.EXPECT().Touch(ctx, "alice", now).Return(nil)
		m.relations.EXPECT().AcceptedPeerIDs(ctx, "alice").Return([]string{"bob"}, nil)
		m.pub.EXPECT().ToUser("bob", gomock.Any()).Do(func(_ string, ev common.Event) {
			update := ev.(common.PresenceUpdateEvent)
			assert.Equal(t, "alice", update.UserID)
			assert.False(t, update.Online)
			require.NotNil(t, update.LastSeenAt)
			assert.Equal(t, now, *update.LastSeenAt)
		})

		tracker.Disconnected(ctx, "alice", "conn-1")
	})

	t.Run("remaining device keeps identity online silently", func(t *testing.T) {
		tracker, registry, _, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		registry.Register("alice", "conn-1")
		registry.Register("alice", "conn-2")

		tracker.Disconnected(ctx, "alice", "conn-1")
		assert.True(t, registry.Online("alice"))
	})

	t.Run("unknown connection is silent", func(t *testing.T) {
		tracker, _, _, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		tracker.Disconnected(ctx, "alice", "conn-404")
	})
}

func TestTracker_StatusOf(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("online means no last seen", func(t *testing.T) {
		tracker, registry, _, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		registry.Register("alice", "conn-1")

		online, lastSeenAt, err := tracker.StatusOf(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, online)
		assert.Nil(t, lastSeenAt)
	})

	t.Run("offline reads the store", func(t *testing.T) {
		tracker, _, m, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		seen := now.Add(-time.Hour)
		m.lastSeen.EXPECT().Get(ctx, "alice").Return(&seen, nil)

		online, lastSeenAt, err := tracker.StatusOf(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, online)
		require.NotNil(t, lastSeenAt)
		assert.Equal(t, seen, *lastSeenAt)
	})

	t.Run("never seen", func(t *testing.T) {
		tracker, _, m, finish := newTracker(t, fixedClock{now: now})
		defer finish()

		m.lastSeen.EXPECT().Get(ctx, "alice").Return(nil, nil)

		online, lastSeenAt, err := tracker.StatusOf(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, online)
		assert.Nil(t, lastSeenAt)
	})
}

func TestMemoryLastSeen(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLastSeen()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	at, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, at)

	require.NoError(t, store.Touch(ctx, "alice", now))

	at, err = store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.Equal(t, now, *at)
}
