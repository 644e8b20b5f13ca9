// Package logging provides a minimal slog-backed logging interface for the
// mpir wrapper and the tools built on it. The core arithmetic path never
// logs; this package exists for diagnostics in callers (see cmd/mpir-go).
package logging
