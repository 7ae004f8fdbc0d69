// Package cache provides a generic, thread-safe LRU cache.
//
// The schema package uses it to keep compiled checkers keyed by declaration
// path, so hot declarations are parsed once while the number of resident
// checkers stays bounded.
//
//	checkers := cache.New[string, *kwcheck.Checker](64,
//		cache.WithEvictCallback(func(path string, _ *kwcheck.Checker) {
//			log.Debug("checker evicted", "path", path)
//		}),
//	)
//	checkers.Add("signup.yaml", signup)
//	c, ok := checkers.Get("signup.yaml")
//
// Get, Add and Remove run in O(1). Eviction callbacks run after the internal
// lock is released, so they may call back into the cache.
package cache
