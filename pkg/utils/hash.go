package utils

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Fingerprint returns the xxhash64 of b as 16 hex digits. Two cartridges
// sharing a title still receive distinct fingerprints.
func Fingerprint(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}
