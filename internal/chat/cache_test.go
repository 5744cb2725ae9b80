package chat

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c := NewResponseCache(time.Minute)

	c.Put("what are your rates?", "See the rates page.")
	got, ok := c.Get("what are your rates?")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != "See the rates page." {
		t.Errorf("Get = %q", got)
	}
}

func TestCacheExactKeyMatch(t *testing.T) {
	c := NewResponseCache(time.Minute)
	c.Put("Hello", "hi")

	// No normalization: case and whitespace differences are misses.
	if _, ok := c.Get("hello"); ok {
		t.Error("case-differing key unexpectedly hit")
	}
	if _, ok := c.Get("Hello "); ok {
		t.Error("whitespace-differing key unexpectedly hit")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewResponseCache(time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Put("q", "a")

	c.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	if _, ok := c.Get("q"); ok {
		t.Error("expired entry still served")
	}
	if c.Len() != 0 {
		t.Error("expired entry not evicted on read")
	}
}

func TestCachePutResetsTTL(t *testing.T) {
	c := NewResponseCache(time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Put("q", "a")
	c.now = func() time.Time { return base.Add(50 * time.Second) }
	c.Put("q", "b")

	c.now = func() time.Time { return base.Add(100 * time.Second) }
	got, ok := c.Get("q")
	if !ok {
		t.Fatal("entry expired despite TTL reset on overwrite")
	}
	if got != "b" {
		t.Errorf("Get = %q, want the overwritten answer", got)
	}
}

func TestCacheManuallyExpiredEntryRemoved(t *testing.T) {
	c := NewResponseCache(time.Minute)
	c.entries["q"] = cachedAnswer{answer: "a", expiresAt: time.Now().Add(-time.Hour)}

	if _, ok := c.Get("q"); ok {
		t.Error("entry with past expiry served")
	}
	if _, present := c.entries["q"]; present {
		t.Error("entry with past expiry not removed")
	}
}
