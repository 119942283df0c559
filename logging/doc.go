// Package logging provides structured JSON logging on log/slog.
//
// Level names are case-insensitive and extend slog's set with TRACE, which sits below DEBUG
// and is rendered as "TRACE" in the output. Logs go to any io.Writer; OpenFile appends to the
// log_path of the service configuration.
package logging
