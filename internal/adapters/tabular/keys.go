package tabular

import (
	"strings"

	"github.com/google/uuid"
)

// newCacheKey issues a cache key that is unique across processes, so that
// views restored from the cache directory never collide with fresh ones.
func newCacheKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
