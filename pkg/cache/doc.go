// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.NewLRUCache[string, []byte](128)
//	c.Put("k", data)
//	v, ok := c.Get("k")
//
// GetOrLoad fills missing entries from a loader; loader errors are returned
// and nothing is cached.
package cache
