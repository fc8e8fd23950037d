// Package logging assembles the structured slog loggers shared by the CLI and
// the rename pipeline.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context helpers so pipeline code can tag every line with the run ID
// of the invocation that produced it. Diagnostics always flow to the writer
// the caller supplies (stderr in the CLI) so stdout stays reserved for command
// output such as the rename plan.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
