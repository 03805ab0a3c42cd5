package system

import (
	"log/slog"
	"os"

	"github.com/akrennmair/pico/internal/logging"
)

// LogEnv names the environment variable that enables runtime logging in
// generated programs. Its value is a level such as "debug" or "warn".
const LogEnv = "PICO_LOG"

var logger = logging.NewNop()

func init() {
	lvl, ok := os.LookupEnv(LogEnv)
	if !ok {
		return
	}
	level, err := logging.ParseLevel(lvl)
	if err != nil {
		level = slog.LevelInfo
	}
	logger = logging.New(level, os.Stderr)
}

// SetLogger sets the logger that receives failures the runtime functions
// don't report to their callers. A nil logger discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	logger = l
}
