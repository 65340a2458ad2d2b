// Package config handles configuration loading and defaults.
//
// Values are merged in priority order: built-in defaults, then the user
// config file (~/.tm/tm.toml, or tm/tm.toml under the OS config
// directory), then TM_* environment variables, then CLI flags.
package config
