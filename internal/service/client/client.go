package client

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/config"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
	"github.com/oshokin/alarm-scheduler/internal/service/common"
)

// Options carries settings shared by every client-side command.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string
}

// session bundles the pieces every command needs: an open client and the
// detected actor for audit attribution.
type session struct {
	client *common.Client
	actor  *pb.SystemActor
}

// connect loads configuration, detects the actor and dials the scheduler.
func connect(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	return &session{
		client: client,
		actor:  common.DetectActor(),
	}, nil
}

// close releases the session's connection.
func (s *session) close() {
	_ = s.client.Close()
}

// formatDeadline renders an epoch-seconds deadline for log output.
func formatDeadline(deadline int64) string {
	return time.Unix(deadline, 0).Format(time.RFC3339)
}

// formatActor renders an actor as username@hostname.
func formatActor(actor *pb.SystemActor) string {
	if actor == nil {
		return "<unknown>"
	}

	return fmt.Sprintf("%s@%s", actor.GetUsername(), actor.GetHostname())
}
