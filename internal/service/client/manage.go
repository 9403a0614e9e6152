package client

import (
	"context"
	"fmt"

	"github.com/oshokin/alarm-scheduler/internal/logger"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
)

// ManageOptions identifies the alarm a management command operates on.
type ManageOptions struct {
	// Options holds the shared connection settings.
	Options

	// AlarmID is the alarm to operate on.
	AlarmID int64
	// Seconds is the fresh duration for the change command; unused elsewhere.
	Seconds int64
}

// RunCancel removes a scheduled or suspended alarm.
func RunCancel(ctx context.Context, opts *ManageOptions) error {
	ctx = logger.WithName(ctx, "alarm-manage")

	s, err := connect(ctx, &opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	if err = s.client.CancelAlarm(ctx, s.actor, opts.AlarmID); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm cancelled", "alarm_id", opts.AlarmID)

	return nil
}

// RunChange gives an alarm a fresh duration measured from now.
func RunChange(ctx context.Context, opts *ManageOptions) error {
	ctx = logger.WithName(ctx, "alarm-manage")

	s, err := connect(ctx, &opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.ChangeAlarm(ctx, s.actor, opts.AlarmID, opts.Seconds)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm rescheduled",
		"alarm_id", opts.AlarmID,
		"fires_at", formatDeadline(response.GetDeadline()))

	return nil
}

// RunSuspend parks an alarm, keeping its remaining time.
func RunSuspend(ctx context.Context, opts *ManageOptions) error {
	ctx = logger.WithName(ctx, "alarm-manage")

	s, err := connect(ctx, &opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.SuspendAlarm(ctx, s.actor, opts.AlarmID)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm suspended",
		"alarm_id", opts.AlarmID,
		"remaining_seconds", response.GetRemainingSeconds())

	return nil
}

// RunReactivate rearms a suspended alarm.
func RunReactivate(ctx context.Context, opts *ManageOptions) error {
	ctx = logger.WithName(ctx, "alarm-manage")

	s, err := connect(ctx, &opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.ReactivateAlarm(ctx, s.actor, opts.AlarmID)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm reactivated",
		"alarm_id", opts.AlarmID,
		"fires_at", formatDeadline(response.GetDeadline()))

	return nil
}

// RunList prints every alarm the scheduler holds, soonest first.
func RunList(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-manage")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.ListAlarms(ctx)
	if err != nil {
		return err
	}

	alarms := response.GetAlarms()
	if len(alarms) == 0 {
		logger.Info(ctx, "No alarms scheduled")

		return nil
	}

	for _, snapshot := range alarms {
		logger.Infof(ctx, "%s", formatSnapshot(snapshot))
	}

	return nil
}

// formatSnapshot converts one alarm snapshot to a readable log message.
func formatSnapshot(snapshot *pb.AlarmSnapshot) string {
	if snapshot == nil {
		return "<nil snapshot>"
	}

	status := fmt.Sprintf("fires %s", formatDeadline(snapshot.GetDeadline()))
	if snapshot.GetSuspended() {
		status = fmt.Sprintf("suspended, %ds remaining", snapshot.GetRemainingSeconds())
	}

	return fmt.Sprintf("(%d) %q [group %d, %s]",
		snapshot.GetAlarmId(),
		snapshot.GetMessage(),
		snapshot.GetGroupId(),
		status)
}
