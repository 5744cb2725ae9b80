package chat

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a memoized answer is served before
// the question is resolved again.
const DefaultCacheTTL = 10 * time.Minute

type cachedAnswer struct {
	answer    string
	expiresAt time.Time
}

// ResponseCache memoizes question->answer pairs in memory. Keys are
// the exact message text as typed; there is no normalization, so a
// whitespace or case difference is a miss. Expired entries are never
// swept, only evicted lazily on read.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]cachedAnswer
	ttl     time.Duration
	now     func() time.Time
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{
		entries: make(map[string]cachedAnswer),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put overwrites any existing entry for question and resets its TTL.
func (c *ResponseCache) Put(question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[question] = cachedAnswer{
		answer:    answer,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Get returns the cached answer for question. An entry past its
// expiry is deleted and reported absent.
func (c *ResponseCache) Get(question string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[question]
	if !ok {
		return "", false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, question)
		return "", false
	}
	return entry.answer, true
}

// Len reports the number of entries currently held, including ones
// that have expired but not yet been read.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
