// Package config loads, normalizes, and validates galleria configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. Running without any
// configuration file is fully supported: the defaults reproduce the stock
// photos/ layout and index.html output. The Config type centralizes every
// knob the CLI needs so commands receive sanitized paths, canonical
// extension sets, and clear validation errors.
package config
