// Package app contains the core application logic. It wires configuration
// loading, the source registry, telemetry and the compiler together,
// decoupled from any specific entrypoint like a CLI.
package app
