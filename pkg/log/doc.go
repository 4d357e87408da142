/*
Package log provides structured logging for the Burrow client using zerolog.

The log package wraps zerolog with a global logger, configurable level and
format, and helpers for attaching client context to log lines.

# Usage

Initializing the logger:

	import "github.com/burrowlabs/burrow/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
	})

Context loggers:

	callLog := log.WithComponent("call")
	callLog.Debug().Str("method", method).Msg("invoking")

	streamLog := log.WithStreamID(handle.ID())
	streamLog.Info().Msg("stream cancelled")

Library packages log through child loggers so embedders can filter by the
component, environment, and stream_id fields.

Output goes to stderr by default; the CLI prints results on stdout and logs
never interleave with them.
*/
package log
