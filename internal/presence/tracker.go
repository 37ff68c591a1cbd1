package presence

import (
	"context"
	"log"
	"time"

	"pairchat/internal/common"
)

// AcceptedLister is the slice of the relationship store the tracker needs:
// who is allowed to see this identity's presence.
type AcceptedLister interface {
	AcceptedPeerIDs(ctx context.Context, userID string) ([]string, error)
}

// Tracker turns connection churn into presence events. Events go to the
// personal channels of the identity's accepted relations only, never to a
// global audience, so fan-out cost is bounded by relation degree.
type Tracker struct {
	registry  *Registry
	relations AcceptedLister
	lastSeen  LastSeenStore
	pub       common.Publisher
	clock     common.Clock
}

func NewTracker(registry *Registry, relations AcceptedLister, lastSeen LastSeenStore, pub common.Publisher, clock common.Clock) *Tracker {
	if clock == nil {
		clock = common.SystemClock
	}
	return &Tracker{
		registry:  registry,
		relations: relations,
		lastSeen:  lastSeen,
		pub:       pub,
		clock:     clock,
	}
}

// Connected registers a connection. The online event fires only on the
// offline->online transition, so a second device connecting is silent.
func (t *Tracker) Connected(ctx context.Context, userID, connID string) {
	if !t.registry.Register(userID, connID) {
		return
	}
	t.broadcast(ctx, common.PresenceUpdateEvent{UserID: userID, Online: true})
}

// Disconnected drops a connection. On the online->offline transition the
// last-seen timestamp is captured and included in the event; a rapid
// reconnect before the last connection drops emits nothing.
func (t *Tracker) Disconnected(ctx context.Context, userID, connID string) {
	if !t.registry.Unregister(userID, connID) {
		return
	}

	now := t.clock.Now()
	if err := t.lastSeen.Touch(ctx, userID, now); err != nil {
		log.Printf("presence: recording last seen for %s: %v", userID, err)
	}
	t.broadcast(ctx, common.PresenceUpdateEvent{UserID: userID, Online: false, LastSeenAt: &now})
}

// StatusOf reports whether an identity is online right now and, when
// offline, when it was last seen. lastSeenAt is nil while online.
func (t *Tracker) StatusOf(ctx context.Context, userID string) (online bool, lastSeenAt *time.Time, err error) {
	if t.registry.Online(userID) {
		return true, nil, nil
	}
	at, err := t.lastSeen.Get(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	return false, at, nil
}

func (t *Tracker) broadcast(ctx context.Context, ev common.PresenceUpdateEvent) {
	peers, err := t.relations.AcceptedPeerIDs(ctx, ev.UserID)
	if err != nil {
		log.Printf("presence: listing relations for %s: %v", ev.UserID, err)
		return
	}
	for _, peer := range peers {
		t.pub.ToUser(peer, ev)
	}
}
