package realtime

import (
	"sync"

	"github.com/F2fX4553/polychat/pkg/logger"
)

// Sink receives events for one live connection. Deliver must not block;
// a full buffer or broken socket is reported as an error and the event is
// dropped for that connection only (at-most-once, best-effort).
type Sink interface {
	Deliver(Event) error
}

// Publisher is the fan-out surface handed to the usecases. Events are
// delivered to the membership set sampled at call time.
type Publisher interface {
	Publish(key RoomKey, ev Event)
	PublishExcept(key RoomKey, ev Event, excludeConnID string)
	Broadcast(ev Event)
}

type set map[string]struct{}

// Registry is pure connection bookkeeping: which rooms a connection has
// joined and which connections a room currently holds. Nothing here is
// persisted; clients re-join after a reconnect.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Sink
	rooms    map[RoomKey]set
	conns    map[string]map[RoomKey]struct{}

	logger logger.Logger
}

func NewRegistry(logger logger.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]Sink),
		rooms:    make(map[RoomKey]set),
		conns:    make(map[string]map[RoomKey]struct{}),
		logger:   logger,
	}
}

// Register adds a live connection with no memberships yet. Re-registering
// the same id replaces the sink.
func (r *Registry) Register(connID string, sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[connID] = sink
	if _, ok := r.conns[connID]; !ok {
		r.conns[connID] = make(map[RoomKey]struct{})
	}
}

// Join is idempotent: joining an already-joined room is a successful no-op.
// Joining with an unregistered connection id is also a no-op; membership
// without a sink would only produce dead fan-out targets.
func (r *Registry) Join(connID string, key RoomKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[connID]; !ok {
		return
	}
	if _, ok := r.rooms[key]; !ok {
		r.rooms[key] = make(set)
	}
	r.rooms[key][connID] = struct{}{}
	r.conns[connID][key] = struct{}{}
}

// Leave is idempotent: leaving a room never joined is a no-op.
func (r *Registry) Leave(connID string, key RoomKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeMembership(connID, key)
}

// Disconnect removes the connection from every room it belonged to and
// drops its session. Duplicate disconnects are tolerated as no-ops.
func (r *Registry) Disconnect(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.conns[connID] {
		if members, ok := r.rooms[key]; ok {
			delete(members, connID)
			if len(members) == 0 {
				delete(r.rooms, key)
			}
		}
	}
	delete(r.conns, connID)
	delete(r.sessions, connID)
}

// caller must hold r.mu
func (r *Registry) removeMembership(connID string, key RoomKey) {
	if members, ok := r.rooms[key]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.rooms, key)
		}
	}
	if keys, ok := r.conns[connID]; ok {
		delete(keys, key)
	}
}

// Publish delivers ev to every connection in the room's member set as
// sampled now. Delivery happens outside the lock; a failed target is
// logged and skipped, never aborting the rest.
func (r *Registry) Publish(key RoomKey, ev Event) {
	r.PublishExcept(key, ev, "")
}

func (r *Registry) PublishExcept(key RoomKey, ev Event, excludeConnID string) {
	r.deliver(r.snapshotRoom(key, excludeConnID), ev)
}

// Broadcast delivers ev to every registered connection regardless of room.
func (r *Registry) Broadcast(ev Event) {
	r.deliver(r.snapshotAll(), ev)
}

type target struct {
	connID string
	sink   Sink
}

func (r *Registry) snapshotRoom(key RoomKey, excludeConnID string) []target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.rooms[key]
	if !ok {
		return nil
	}
	targets := make([]target, 0, len(members))
	for connID := range members {
		if connID == excludeConnID {
			continue
		}
		if sink, exists := r.sessions[connID]; exists {
			targets = append(targets, target{connID: connID, sink: sink})
		}
	}
	return targets
}

func (r *Registry) snapshotAll() []target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	targets := make([]target, 0, len(r.sessions))
	for connID, sink := range r.sessions {
		targets = append(targets, target{connID: connID, sink: sink})
	}
	return targets
}

func (r *Registry) deliver(targets []target, ev Event) {
	for _, t := range targets {
		if err := t.sink.Deliver(ev); err != nil {
			r.logger.Warn("dropping event for connection", "conn_id", t.connID, "event", ev.Name, "err", err)
		}
	}
}

// Rooms returns the membership count for a key, for logging and tests.
func (r *Registry) Rooms(key RoomKey) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[key])
}
