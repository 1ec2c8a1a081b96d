// Package file provides a file-based implementation of the ConfigStore
// driven port. Configuration is persisted as TOML in the gapscan
// config directory, with nested tables flattened to dot-notation keys.
package file
