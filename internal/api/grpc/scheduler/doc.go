// Package scheduler implements the gRPC transport for the alarm scheduler.
//
// It adapts domain types to protobuf messages, maps domain errors onto gRPC
// status codes, and exposes a server that calls into a provided
// business-service interface.
package scheduler
