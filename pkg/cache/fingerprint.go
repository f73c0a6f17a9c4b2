package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Computes a deterministic hash of the given json serializable value.
// Values which are structurally equal (independent of the order of object keys) get the same fingerprint.
func Fingerprint(options any) (string, error) {
	canonical, err := canonicalJson(options)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Converts the value into a canonical json representation.
// The value is roundtripped thru a generic value tree so that structs, maps and raw json
// all end up with sorted object keys and numbers in the same notation (1.0 == 1).
func canonicalJson(value any) ([]byte, error) {
	rawJson, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed converting options to json: %w", err)
	}
	var tree any
	if err := json.Unmarshal(rawJson, &tree); err != nil {
		return nil, fmt.Errorf("failed reading options json: %w", err)
	}
	canonical, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed converting options to canonical json: %w", err)
	}
	return canonical, nil
}
