package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for verdict caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for one classification. Provider, model, and
// prompt version are all part of the key so a configuration change never
// serves a verdict produced under the old setup.
func Key(provider, model, promptVersion, text string) string {
	hash := sha256.Sum256([]byte(text))
	return "veridex:" + provider + ":" + model + ":" + promptVersion + ":" + hex.EncodeToString(hash[:])
}
