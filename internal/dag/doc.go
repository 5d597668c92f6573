// Package dag is a small directed graph keyed by string IDs. The compiler
// uses it to check that managed object dependencies form a DAG before any
// managed object is handed to the builder, and to order nodes so that
// dependencies come before their dependents.
package dag
