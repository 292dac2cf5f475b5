// Package runtime coordinates presence, room membership, game tick
// scheduling and event fanout. It orchestrates the gateway without
// containing business logic or domain rules.
package runtime

import (
	"sync"

	"github.com/Rafael2sf/ft-transcendence-sub001/contract"
	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
)

type Set[T comparable] map[T]struct{}

// Registry maintains the relation between connections, users and
// logical rooms. Membership operations are idempotent per connection
// and last-writer-wins; empty sets are deleted to avoid leaks.
type Registry struct {
	mu     sync.RWMutex
	sinks  map[string]contract.EventSink // connID -> sink
	owner  map[string]domain.UserID      // connID -> user
	conns  map[domain.UserID]Set[string] // user -> connIDs
	rooms  map[domain.RoomID]Set[string] // room -> connIDs
	joined map[string]Set[domain.RoomID] // connID -> rooms
}

func NewRegistry() *Registry {
	return &Registry{
		sinks:  make(map[string]contract.EventSink),
		owner:  make(map[string]domain.UserID),
		conns:  make(map[domain.UserID]Set[string]),
		rooms:  make(map[domain.RoomID]Set[string]),
		joined: make(map[string]Set[domain.RoomID]),
	}
}

// Register records an authenticated connection and joins it to the
// per-user room it keeps for its whole lifetime.
func (r *Registry) Register(connID string, userID domain.UserID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sinks[connID] = sink
	r.owner[connID] = userID
	if _, ok := r.conns[userID]; !ok {
		r.conns[userID] = make(Set[string])
	}
	r.conns[userID][connID] = struct{}{}

	r.joinLocked(connID, domain.UserRoom(userID))
}

// Unregister drops a connection from every room it belongs to and
// returns its owner plus the rooms it was in.
func (r *Registry) Unregister(connID string) (domain.UserID, []domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID := r.owner[connID]
	var left []domain.RoomID
	for room := range r.joined[connID] {
		left = append(left, room)
		r.leaveLocked(connID, room)
	}

	delete(r.sinks, connID)
	delete(r.owner, connID)
	delete(r.joined, connID)
	if conns, ok := r.conns[userID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(r.conns, userID)
		}
	}
	return userID, left
}

// Join adds the connection to a room. Joining twice is a no-op.
func (r *Registry) Join(connID string, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sinks[connID]; !ok {
		return
	}
	r.joinLocked(connID, room)
}

// Leave removes the connection from a room. Leaving a room the
// connection never joined is a no-op.
func (r *Registry) Leave(connID string, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(connID, room)
}

func (r *Registry) joinLocked(connID string, room domain.RoomID) {
	if _, ok := r.rooms[room]; !ok {
		r.rooms[room] = make(Set[string])
	}
	r.rooms[room][connID] = struct{}{}

	if _, ok := r.joined[connID]; !ok {
		r.joined[connID] = make(Set[domain.RoomID])
	}
	r.joined[connID][room] = struct{}{}
}

func (r *Registry) leaveLocked(connID string, room domain.RoomID) {
	if members, ok := r.rooms[room]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
	if rooms, ok := r.joined[connID]; ok {
		delete(rooms, room)
	}
}

func (r *Registry) InRoom(connID string, room domain.RoomID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[room][connID]
	return ok
}

func (r *Registry) RoomSize(room domain.RoomID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}

// ForceLeaveUser evicts every live connection of userID from room.
// Used for kick/ban, where the acting principal is not the affected
// connection.
func (r *Registry) ForceLeaveUser(userID domain.UserID, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for connID := range r.conns[userID] {
		r.leaveLocked(connID, room)
	}
}

// DestroyRoom evicts every connection from the room, unconditionally.
func (r *Registry) DestroyRoom(room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for connID := range r.rooms[room] {
		if rooms, ok := r.joined[connID]; ok {
			delete(rooms, room)
		}
	}
	delete(r.rooms, room)
}

// SinksForRoom resolves the current member connections of a room into
// their sinks, excluding every connection owned by the listed users.
func (r *Registry) SinksForRoom(room domain.RoomID, exclude ...domain.UserID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.rooms[room]
	if !ok {
		return nil
	}

	excluded := make(Set[domain.UserID], len(exclude))
	for _, userID := range exclude {
		if userID != "" {
			excluded[userID] = struct{}{}
		}
	}

	var activeSinks []contract.EventSink
	for connID := range members {
		if _, skip := excluded[r.owner[connID]]; skip {
			continue
		}
		if sink, exists := r.sinks[connID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}
