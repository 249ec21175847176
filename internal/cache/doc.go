// Package cache provides a small generic LRU cache with a soft limit,
// used to keep rasterized glyph masks between draws.
//
//	masks := cache.New[maskKey, *image.Alpha](512)
//	m, err := masks.GetOrCreate(key, func() (*image.Alpha, error) {
//	    return rasterize(key)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
