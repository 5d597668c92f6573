// Package build defines the external builder the compiler emits a validated
// office floor into, and the per-pass Tracker that guarantees each entity is
// emitted at most once.
package build
