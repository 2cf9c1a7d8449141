// Package validation binds request payloads and turns validator failures
// into client-facing field errors.
package validation
