// Package driving defines the inbound ports of the core: the
// controller interfaces consumed by the CLI and TUI adapters.
package driving
