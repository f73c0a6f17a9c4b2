package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roemer/gominutes/pkg/common"
)

// A cache that stores raw json responses of remote calls on disk.
// The responses are stored at <CacheDir>/<method>/<fingerprint>.json and never expire.
type ResponseCache struct {
	cacheDir string
	logger   *slog.Logger
}

// Creates a new cache in the given directory. An empty directory disables the cache.
func NewResponseCache(cacheDir string, logger *slog.Logger) *ResponseCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResponseCache{
		cacheDir: cacheDir,
		logger:   logger.With(slog.String("component", "cache")),
	}
}

// Checks if the cache is enabled at all.
func (c *ResponseCache) Enabled() bool {
	return c != nil && c.cacheDir != ""
}

func (c *ResponseCache) PathFor(method common.Method, options common.CallOptions) (string, error) {
	// Stop if caching not enabled
	if !c.Enabled() {
		return "", nil
	}
	// Nil and empty options are the same call
	if options == nil {
		options = common.CallOptions{}
	}
	fingerprint, err := Fingerprint(options)
	if err != nil {
		return "", fmt.Errorf("failed computing the fingerprint for '%s': %w", method, err)
	}
	return filepath.Join(c.cacheDir, string(method), fingerprint+".json"), nil
}

func (c *ResponseCache) Has(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	return common.FileExists(path)
}

func (c *ResponseCache) Read(path string) (json.RawMessage, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading the cache file '%s': %w", path, err)
	}
	if !json.Valid(content) {
		var probe any
		return nil, &CacheCorruptionError{Path: path, Err: json.Unmarshal(content, &probe)}
	}
	c.logger.Debug(fmt.Sprintf("Read cached response from '%s'", path))
	return json.RawMessage(bytes.TrimSpace(content)), nil
}

func (c *ResponseCache) Write(path string, value json.RawMessage) error {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("error creating the cache directory for file '%s': %w", path, err)
	}
	// Indent the response so the files stay readable
	var content bytes.Buffer
	if err := json.Indent(&content, value, "", "  "); err != nil {
		return fmt.Errorf("error converting the response for cache file '%s': %w", path, err)
	}
	content.WriteString("\n")
	if err := os.WriteFile(path, content.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error writing the cache file '%s': %w", path, err)
	}
	c.logger.Debug(fmt.Sprintf("Stored response in '%s'", path))
	return nil
}
