// Package logging defines the named [log/slog] levels used by this module and helpers for
// adjusting them from command-line flags.
package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	LevelTrace   = slog.LevelDebug - 4 // -8
	LevelDebug   = slog.LevelDebug     // -4
	LevelVerbose = slog.LevelDebug + 2 // -2
	LevelInfo    = slog.LevelInfo      // 0
	LevelWarn    = slog.LevelWarn      // 4
	LevelError   = slog.LevelError     // 8
	LevelFatal   = slog.LevelError + 4 // 12
)

// ladder orders the named levels from least to most severe.
var ladder = []struct {
	name string
	lvl  slog.Level
}{
	{"trace", LevelTrace},
	{"debug", LevelDebug},
	{"verbose", LevelVerbose},
	{"info", LevelInfo},
	{"warn", LevelWarn},
	{"error", LevelError},
	{"fatal", LevelFatal},
}

// BumpLevel returns lvl stepped to the next named level: less severe (more verbose) if lower
// is true, more severe otherwise.  A lvl between two rungs snaps to the nearest rung in the
// requested direction.
func BumpLevel(lvl slog.Level, lower bool) slog.Level {
	if lower {
		for i := len(ladder) - 1; i >= 0; i-- {
			if ladder[i].lvl < lvl {
				return ladder[i].lvl
			}
		}
		return ladder[0].lvl
	}
	for _, rung := range ladder {
		if rung.lvl > lvl {
			return rung.lvl
		}
	}
	return ladder[len(ladder)-1].lvl
}

// ParseLevel converts a level name such as "debug" or "warn" to its [slog.Level].
func ParseLevel(arg string) (slog.Level, error) {
	names := make([]string, len(ladder))
	for i, rung := range ladder {
		if strings.EqualFold(arg, rung.name) {
			return rung.lvl, nil
		}
		names[i] = rung.name
	}
	return 0, fmt.Errorf("invalid log level; expected one of: %v", strings.Join(names, ", "))
}
