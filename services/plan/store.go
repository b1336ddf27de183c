package plan

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"webmaker/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists plan sessions between wizard requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.PlanSession, error)
	Save(ctx context.Context, session *models.PlanSession) error
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "plan:session:"

// RedisSessionStore keeps sessions JSON-marshalled in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.PlanSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, &SessionNotFoundError{SessionID: sessionID}
		}
		return nil, err
	}
	var session models.PlanSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.PlanSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKeyPrefix+session.ID, data, s.TTL).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is the fallback when Redis is not configured, and what
// tests run against. Process-local; sessions do not survive a restart.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySessionEntry
}

type memorySessionEntry struct {
	session   models.PlanSession
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]memorySessionEntry),
	}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.PlanSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	session := entry.session
	session.Selection = entry.session.Selection.Clone()
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.PlanSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *session
	stored.Selection = session.Selection.Clone()
	s.sessions[session.ID] = memorySessionEntry{
		session:   stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
