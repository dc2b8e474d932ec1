// Package config manages user-level settings stored at ~/.protokit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the directory holding additional project definitions and the log level.
package config
