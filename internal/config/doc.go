// Package config loads and validates mediashelf configuration.
//
// Configuration comes from a TOML file (default ~/.config/mediashelf/config.toml,
// or mediashelf.toml in the working directory) layered over built-in defaults.
// All path fields are expanded and absolute after Load returns.
package config
