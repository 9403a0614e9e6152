// Package config defines connection settings used by the scheduler binaries
// and provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the server gRPC address, RPC timeout, logging
// options and the submission message bound.
package config
