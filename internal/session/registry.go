package session

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
)

// Registry maps user IDs to their states. States are created on the first
// change and dropped on logout or when the login session expires.
type Registry struct {
	clock          clock.Clock
	mu             sync.Mutex
	states         map[string]*State
	subscribers    map[int]Subscriber
	nextSubID      int
	metricsManager *metrics.Manager
}

func NewRegistry(clk clock.Clock, metricsManager *metrics.Manager) *Registry {
	return &Registry{
		clock:          clk,
		states:         map[string]*State{},
		subscribers:    map[int]Subscriber{},
		metricsManager: metricsManager,
	}
}

// Subscribe registers fn for the changes of every user.
func (r *Registry) Subscribe(fn Subscriber) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subscribers, id)
		r.mu.Unlock()
	}
}

// State returns the user's state, creating it when missing.
func (r *Registry) State(userID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[userID]
	if !ok {
		s = NewState(userID, r.clock)
		s.onChange = r.notify
		r.states[userID] = s
		r.metricsManager.GaugeActiveSessions.Set(float64(len(r.states)))
	}
	return s
}

func (r *Registry) Lookup(userID string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[userID]
	return s, ok
}

func (r *Registry) ApplyProfile(userID string, p profile.Profile) {
	r.State(userID).ApplyProfile(p)
}

func (r *Registry) ApplyConsumed(userID string, grams int) {
	r.State(userID).ApplyConsumed(grams)
}

// Drop forgets the user's state.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.states[userID]; !ok {
		return
	}
	delete(r.states, userID)
	r.metricsManager.GaugeActiveSessions.Set(float64(len(r.states)))
	log.Debugf("session state dropped for %s", userID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func (r *Registry) notify(change Change) {
	r.mu.Lock()
	subscribers := make([]Subscriber, 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subscribers = append(subscribers, fn)
	}
	r.mu.Unlock()

	for _, fn := range subscribers {
		fn(change)
	}
}
