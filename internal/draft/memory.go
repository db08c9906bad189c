package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stpnv0/StudioDesk/internal/domain"
)

type memorySession struct {
	drafts  map[string]json.RawMessage
	touched time.Time
}

// MemoryCache keeps drafts in process memory. A session expires after ttl
// without activity; expired sessions are swept on access.
type MemoryCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memorySession
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

func (c *MemoryCache) Save(_ context.Context, key domain.DraftKey, payload json.RawMessage) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validatePayload(payload); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()

	s, ok := c.sessions[key.Session]
	if !ok {
		s = &memorySession{drafts: make(map[string]json.RawMessage)}
		c.sessions[key.Session] = s
	}
	s.drafts[key.String()] = append(json.RawMessage(nil), payload...)
	s.touched = c.now()
	return nil
}

func (c *MemoryCache) Load(_ context.Context, key domain.DraftKey) (json.RawMessage, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()

	s, ok := c.sessions[key.Session]
	if !ok {
		return nil, false, nil
	}
	payload, ok := s.drafts[key.String()]
	if !ok {
		return nil, false, nil
	}
	s.touched = c.now()
	return append(json.RawMessage(nil), payload...), true, nil
}

func (c *MemoryCache) Clear(_ context.Context, key domain.DraftKey) error {
	if err := validateKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[key.Session]; ok {
		delete(s.drafts, key.String())
		if len(s.drafts) == 0 {
			delete(c.sessions, key.Session)
		}
	}
	return nil
}

func (c *MemoryCache) EndSession(_ context.Context, session string) error {
	if strings.TrimSpace(session) == "" {
		return fmt.Errorf("%w: draft session is required", domain.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, session)
	return nil
}

// Len reports how many drafts are currently held.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()

	n := 0
	for _, s := range c.sessions {
		n += len(s.drafts)
	}
	return n
}

func (c *MemoryCache) sweep() {
	if c.ttl <= 0 {
		return
	}
	cutoff := c.now().Add(-c.ttl)
	for id, s := range c.sessions {
		if s.touched.Before(cutoff) {
			delete(c.sessions, id)
		}
	}
}
