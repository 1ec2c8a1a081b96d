// Package driven defines the interfaces the core engine depends on:
// signal snapshot access, report persistence and configuration.
// Adapters implement these; the core never imports an adapter.
package driven
