package client

import (
	"context"
	"fmt"

	"github.com/oshokin/alarm-scheduler/internal/logger"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
)

// SubmitOptions describes one alarm to schedule.
type SubmitOptions struct {
	// Options holds the shared connection settings.
	Options

	// AlarmID identifies the alarm; the caller picks it.
	AlarmID int64
	// GroupID is the display group the alarm belongs to.
	GroupID int64
	// Seconds is the requested duration until the alarm fires.
	Seconds int64
	// Message is the payload delivered with the expiry.
	Message string
}

// RunSubmit schedules a single alarm and reports the assigned deadline.
func RunSubmit(ctx context.Context, opts *SubmitOptions) error {
	ctx = logger.WithName(ctx, "alarm-submit")

	s, err := connect(ctx, &opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.SubmitAlarm(ctx, s.actor, &pb.SubmitAlarmRequest{
		AlarmId:          opts.AlarmID,
		GroupId:          opts.GroupID,
		RequestedSeconds: opts.Seconds,
		Message:          opts.Message,
	})
	if err != nil {
		return fmt.Errorf("submit alarm: %w", err)
	}

	logger.InfoKV(ctx, "Alarm scheduled",
		"alarm_id", opts.AlarmID,
		"group_id", opts.GroupID,
		"fires_at", formatDeadline(response.GetDeadline()),
		"actor", formatActor(s.actor))

	return nil
}
