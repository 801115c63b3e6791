package observability

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogger builds the process logger tagged with the service and instance.
// Unknown levels fall back to info.
func InitLogger(service, instanceID, level string, output io.Writer) zerolog.Logger {
	if output == nil {
		output = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Str("service", service)
	if instanceID != "" {
		ctx = ctx.Str("instance_id", instanceID)
	}
	return ctx.Logger()
}
