package cache

import "fmt"

// The error returned when a cache file exists but does not contain valid json.
type CacheCorruptionError struct {
	Path string
	Err  error
}

func (e *CacheCorruptionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cache file '%s' does not contain valid json", e.Path)
	}
	return fmt.Sprintf("cache file '%s' does not contain valid json: %s", e.Path, e.Err)
}

func (e *CacheCorruptionError) Unwrap() error {
	return e.Err
}
