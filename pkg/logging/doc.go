// Package logging provides structured logging utilities shared by the
// support bundle tooling.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version context on every record,
// LOG_LEVEL environment-based configuration, and source location
// tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("rgwsb", version)
//
//	    slog.Info("collection started", "bundle_id", id)
//	    slog.Warn("log directory missing, skipping", "path", dir)
//	}
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug rgwsb -b SB042
package logging
