// Package telemetry records compilation passes with OpenTelemetry.
//
// Every pass produces a `floorplan.compile` span with one child span per
// phase. Issues and builder calls are counted on the `floorplan.issues` and
// `floorplan.builder.calls` counters. Without explicit providers the otel
// globals are used, which are no-ops unless the application installs real
// ones (see SetupTracing).
package telemetry
