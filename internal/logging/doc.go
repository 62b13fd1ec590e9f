// Package logging builds slog loggers for the galleria CLI.
//
// Two output formats are supported: a human-oriented console format with
// ANSI-colored level tags when stdout is a terminal, and line-delimited JSON
// for machine consumption. When a log directory is configured, output is
// teed to galleria.log inside it. Warnings the generator is required to
// surface (missing photos tree, unreadable sections, empty model) flow
// through loggers produced here.
package logging
