package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"hus/config"
	"hus/shared/constant"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Use standard timezone names like 'Asia/Manila' or 'UTC'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}

	return time.Now().In(appLocation)
}

// Today returns the current business date as a fixed-width YYYY-MM-DD
// string. All check-in/check-out comparisons in the booking engine are
// lexicographic on this format.
func Today() string {
	return Now().Format(constant.DateFormat)
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}

	return t.In(appLocation)
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
