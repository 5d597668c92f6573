// Package issues collects node-attributed compile diagnostics.
//
// Issues are never fatal on their own: every structural, linking and typing
// problem found while compiling an office floor is appended to a Sink in the
// order it was discovered, and compilation keeps going so that all problems
// are reported together. Only the build phase consults the sink, and it
// refuses to emit anything while the sink holds issues.
package issues
