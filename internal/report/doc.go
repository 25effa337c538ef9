// Package report writes Branch-and-Bound run results to CSV, the Go
// counterpart of the original tool's results log, and adapts a zap logger
// to the vmplace.LogSink interface the engine's optional trace logging
// depends on.
package report
