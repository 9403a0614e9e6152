// Package common contains helpers shared by the scheduler's client-side
// binaries: a thin wrapper over the generated gRPC client with per-call
// timeouts, and actor detection for operation attribution.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
