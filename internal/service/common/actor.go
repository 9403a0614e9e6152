//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"os"
	"os/user"

	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
)

// unknownValue is used when hostname or username resolution fails.
const unknownValue = "unknown"

// DetectActor gathers the current hostname and username so the scheduler can
// attribute operations to whoever issued them.
func DetectActor() *pb.SystemActor {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = unknownValue
	}

	username := unknownValue

	if current, err := user.Current(); err == nil && current.Username != "" {
		username = current.Username
	}

	return &pb.SystemActor{
		Hostname: hostname,
		Username: username,
	}
}
