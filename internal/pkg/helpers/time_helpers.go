package helpers

import (
	"time"

	"github.com/coursehub/backend/internal/pkg/logger"
)

// ParseDuration parses a duration string, returns the default on error or for
// non-positive values.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		logger.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Unusable duration string, using default")
		return defaultDuration
	}
	return duration
}
