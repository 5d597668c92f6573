// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation for qualified node names
and link references within an office floor.

The format is a dot-separated sequence of segment names, e.g. `web.handle`
for the function `handle` of the office `web`. A reference is always
resolved relative to a scope node, so `handle` inside the office `web` and
`web.handle` from the floor name the same function.
*/
package nodeid
