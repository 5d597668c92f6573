// Package registry provides the central "glue" for the source type system.
//
// The Registry maps the source names used in configuration (e.g.
// "http.client") to the Go code or declared manifests that describe their
// types. It implements typeload.Loader, which is how the compiler sees it.
//
// During application startup, the registry is populated from the compiled-in
// modules and from type manifests declared in configuration, and then
// validated so that inconsistent manifests are rejected before any office
// floor is compiled.
package registry
