// Package config provides configuration structures and utilities for swatch.
// It defines the target page, the request identity and transport settings,
// and report output preferences, along with the optional YAML config file.
package config
