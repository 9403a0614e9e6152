// Package client implements the run logic behind the client-side binaries:
// submitting alarms, watching expiry notifications, and managing scheduled
// alarms (cancel, change, suspend, reactivate, list).
package client
