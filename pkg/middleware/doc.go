// Package middleware provides render observability as injected
// component observers: Prometheus metrics and OpenTelemetry traces.
// Observers attach to a controller with component.WithObserver; the
// reactive core itself carries no instrumentation.
package middleware
