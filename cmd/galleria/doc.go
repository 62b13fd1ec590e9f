// Package main hosts the galleria CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into gallery
// generation, dry-run section listings, generation-history queries, and
// configuration scaffolding. Running the bare binary from a project root
// generates the site with defaults; every flag is optional.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
