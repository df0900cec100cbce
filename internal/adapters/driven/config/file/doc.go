// Package file provides a TOML file-backed implementation of the
// driven.ConfigStore port. clipctl keeps its settings (service
// address, page size, search debounce, download directory) in
// ~/.clipctl/config.toml.
package file
