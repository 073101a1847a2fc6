package profile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const (
	megabyte           = 1024 * 1024
	profileCacheExpire = 60 * 10 // seconds
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type Store interface {
	Get(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, id string, update Update) (*Profile, error)
}

var _ Store = (*Repo)(nil)
var _ Store = (*CachedStore)(nil)

// CachedStore keeps the last known profile per user in memory.
// Every write goes to the underlying store first and replaces the cached copy.
// A read that started before a write never caches what it read.
type CachedStore struct {
	store Store
	cache *freecache.Cache

	mu sync.Mutex
	// bumped on every invalidation of a profile
	generations map[string]uint64
}

func NewCachedStore(store Store, sizeMB int) *CachedStore {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &CachedStore{
		store:       store,
		cache:       freecache.NewCache(sizeMB * megabyte),
		generations: map[string]uint64{},
	}
}

func (s *CachedStore) Get(ctx context.Context, id string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if cached, err := s.cache.Get([]byte(id)); err == nil {
		p := &Profile{}
		if err := json.Unmarshal(cached, p); err == nil {
			return p, nil
		} else {
			log.Errorf("unmarshal cached profile %s: %s", id, err)
		}
	}

	gen := s.generation(id)
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.setIfCurrent(id, p, gen)
	return p, nil
}

func (s *CachedStore) Update(ctx context.Context, id string, update Update) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.profile.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	gen := s.invalidate(id)
	p, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if !s.setIfCurrent(id, p, gen) {
		// a concurrent write finished in between, its result is unknown here
		s.Invalidate(id)
	}
	return p, nil
}

func (s *CachedStore) Invalidate(id string) {
	s.invalidate(id)
}

func (s *CachedStore) invalidate(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[id]++
	s.cache.Del([]byte(id))
	return s.generations[id]
}

func (s *CachedStore) generation(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[id]
}

// setIfCurrent caches p unless id was invalidated after gen was taken.
func (s *CachedStore) setIfCurrent(id string, p *Profile, gen uint64) bool {
	pBytes, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile %s for cache: %s", id, err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[id] != gen {
		return false
	}
	if err := s.cache.Set([]byte(id), pBytes, profileCacheExpire); err != nil {
		log.Errorf("set profile cache %s: %s", id, err)
	}
	return true
}
