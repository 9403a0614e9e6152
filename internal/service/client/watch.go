package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/alarm-scheduler/internal/logger"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
)

// WatchOptions configures the expiry subscription.
type WatchOptions struct {
	// Options holds the shared connection settings.
	Options

	// GroupID filters notifications to one display group; zero watches all.
	GroupID int64
}

// RunWatch subscribes to expiry notifications and prints each one until the
// context is canceled or the server goes away.
func RunWatch(ctx context.Context, opts *WatchOptions) error {
	ctx = logger.WithName(ctx, "alarm-watch")

	s, err := connect(ctx, &opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	stream, err := s.client.StreamExpiries(ctx, opts.GroupID)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Watching for expiring alarms", "group_id", opts.GroupID)

	for {
		notification, err := stream.Recv()
		if err != nil {
			return streamEndError(ctx, err)
		}

		logger.Infof(ctx, "Alarm fired: %s", formatExpiry(notification))
	}
}

// streamEndError classifies why the stream ended: clean shutdown and local
// cancellation are not failures.
func streamEndError(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		logger.Info(ctx, "Server closed the expiry stream")

		return nil
	}

	if st, ok := status.FromError(err); ok && st.Code() == codes.Canceled {
		return nil
	}

	return fmt.Errorf("receive expiry: %w", err)
}

// formatExpiry converts an expiry notification to a readable log message.
func formatExpiry(notification *pb.ExpiryNotification) string {
	if notification == nil {
		return "<nil notification>"
	}

	return fmt.Sprintf("(%d) %q [group %d, due %s, fired %s]",
		notification.GetAlarmId(),
		notification.GetMessage(),
		notification.GetGroupId(),
		formatDeadline(notification.GetDeadline()),
		formatDeadline(notification.GetFiredAt()))
}
