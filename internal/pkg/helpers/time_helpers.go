package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses s as a time.Duration, falling back to def when s is
// empty or malformed. The fallback is logged so misconfigurations surface.
func ParseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Err(err).Str("value", s).Dur("fallback", def).Msg("Invalid duration, using fallback")
		return def
	}
	return d
}
