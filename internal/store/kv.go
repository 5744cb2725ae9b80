package store

// KV is the persistence capability behind the conversation history:
// a flat namespace of string keys. Expiry is handled by the caller
// (the history envelope carries its own expiresAt), so backends stay
// dumb.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Put overwrites any existing value for key.
	Put(key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// NullKV is the backend used when no storage medium is available.
// Reads see nothing and writes go nowhere, so history operations
// degrade to no-ops without erroring.
type NullKV struct{}

func (NullKV) Get(key string) (string, bool, error) { return "", false, nil }
func (NullKV) Put(key, value string) error          { return nil }
func (NullKV) Delete(key string) error              { return nil }
func (NullKV) Close() error                         { return nil }
