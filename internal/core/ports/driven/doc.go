// Package driven defines the outbound ports of the core: the remote
// clip API and the configuration store. Adapters under
// internal/adapters/driven implement these interfaces.
package driven
