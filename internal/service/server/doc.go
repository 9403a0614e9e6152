// Package server wires the scheduling core to the outside world: it loads
// configuration, guards against duplicate instances, runs the expiry worker
// and the gRPC server under one errgroup, and fans fired alarms out to
// stream subscribers.
package server
