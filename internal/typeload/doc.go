// Package typeload describes the types the compiler validates an office
// floor against: what a managed object source provides and depends on, what
// a function consumes and invokes, and what a supplier supplies. Types are
// expressed with cty so that assignability between a dependency and the
// object satisfying it can be checked structurally.
//
// The Loader interface is the compiler's only view of type information.
// Failures to load are returned as errors and become issues; they never
// abort compilation.
package typeload
