package launcher

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logger used by adapters which do not set their own.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().
	Timestamp().
	Logger()
