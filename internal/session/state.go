// Package session holds the in-memory state of signed-in users: their latest
// profile, protein goal and today's consumption. Writers apply changes and
// subscribers are notified of every applied change.
package session

import (
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
)

type ChangeKind string

const (
	ChangeProfile  ChangeKind = "profile"
	ChangeConsumed ChangeKind = "consumed"
)

// Snapshot is a copy of a user state, safe to keep after the state changes.
type Snapshot struct {
	UserID    string                `json:"userId"`
	Profile   *profile.Profile      `json:"profile,omitempty"`
	Goal      nutrition.ProteinGoal `json:"goal"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type Change struct {
	Kind     ChangeKind
	Snapshot Snapshot
}

type Subscriber func(Change)

type State struct {
	mu          sync.Mutex
	userID      string
	profile     *profile.Profile
	consumed    int
	consumedOn  clock.Day
	updatedAt   time.Time
	subscribers map[int]Subscriber
	nextSubID   int
	clock       clock.Clock
	// registry-wide hook, called after the state subscribers
	onChange func(Change)
}

func NewState(userID string, clk clock.Clock) *State {
	return &State{
		userID:      userID,
		subscribers: map[int]Subscriber{},
		clock:       clk,
	}
}

// Subscribe registers fn for every following change. Calling the returned func
// removes it again and is safe to call more than once.
func (s *State) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// ApplyProfile replaces the profile. The goal follows from the new weight and goal type.
func (s *State) ApplyProfile(p profile.Profile) {
	s.apply(ChangeProfile, func() {
		s.profile = &p
	})
}

// ApplyConsumed sets today's consumed protein. It counts only until the local day ends.
func (s *State) ApplyConsumed(grams int) {
	s.apply(ChangeConsumed, func() {
		s.consumed = grams
		s.consumedOn = clock.Today(s.clock)
	})
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) apply(kind ChangeKind, mutate func()) {
	s.mu.Lock()
	mutate()
	s.updatedAt = s.clock.Now()
	change := Change{Kind: kind, Snapshot: s.snapshotLocked()}
	subscribers := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	onChange := s.onChange
	s.mu.Unlock()

	// notified outside the lock, so subscribers may read the state again
	for _, fn := range subscribers {
		fn(change)
	}
	if onChange != nil {
		onChange(change)
	}
}

func (s *State) snapshotLocked() Snapshot {
	consumed := 0
	if s.consumedOn == clock.Today(s.clock) {
		consumed = s.consumed
	}

	snap := Snapshot{
		UserID:    s.userID,
		UpdatedAt: s.updatedAt,
		Goal:      nutrition.ProteinGoal{Consumed: consumed},
	}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
		snap.Goal = nutrition.GoalFor(p, consumed)
	}
	return snap
}
