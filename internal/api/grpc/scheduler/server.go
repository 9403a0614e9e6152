package scheduler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
	core "github.com/oshokin/alarm-scheduler/internal/scheduler"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Submit(ctx context.Context, actor *domain.Actor, sub domain.Submission) (int64, error)
	Cancel(ctx context.Context, actor *domain.Actor, id int64) error
	Change(ctx context.Context, actor *domain.Actor, id, seconds int64) (int64, error)
	Suspend(ctx context.Context, actor *domain.Actor, id int64) (int64, error)
	Reactivate(ctx context.Context, actor *domain.Actor, id int64) (int64, error)
	List(ctx context.Context) []domain.Snapshot
	Subscribe(groupID int64) (<-chan domain.Expiry, func())
}

// Server implements the AlarmScheduler gRPC API.
type Server struct {
	pb.UnimplementedAlarmSchedulerServer

	// service provides the business logic for scheduling operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// SubmitAlarm schedules a new alarm and returns its absolute deadline.
func (s *Server) SubmitAlarm(ctx context.Context, req *pb.SubmitAlarmRequest) (*pb.SubmitAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	sub := domain.Submission{
		ID:               req.GetAlarmId(),
		GroupID:          req.GetGroupId(),
		RequestedSeconds: req.GetRequestedSeconds(),
		Message:          req.GetMessage(),
	}

	deadline, err := s.service.Submit(ctx, toDomainActor(req.GetActor()), sub)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.SubmitAlarmResponse{Deadline: deadline}, nil
}

// CancelAlarm removes a scheduled or suspended alarm.
func (s *Server) CancelAlarm(ctx context.Context, req *pb.CancelAlarmRequest) (*pb.CancelAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := s.service.Cancel(ctx, toDomainActor(req.GetActor()), req.GetAlarmId()); err != nil {
		return nil, toStatusError(err)
	}

	return new(pb.CancelAlarmResponse), nil
}

// ChangeAlarm gives an alarm a fresh duration and deadline.
func (s *Server) ChangeAlarm(ctx context.Context, req *pb.ChangeAlarmRequest) (*pb.ChangeAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deadline, err := s.service.Change(ctx, toDomainActor(req.GetActor()), req.GetAlarmId(), req.GetRequestedSeconds())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.ChangeAlarmResponse{Deadline: deadline}, nil
}

// SuspendAlarm parks an alarm, capturing its remaining seconds.
func (s *Server) SuspendAlarm(ctx context.Context, req *pb.SuspendAlarmRequest) (*pb.SuspendAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	remaining, err := s.service.Suspend(ctx, toDomainActor(req.GetActor()), req.GetAlarmId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.SuspendAlarmResponse{RemainingSeconds: remaining}, nil
}

// ReactivateAlarm rearms a suspended alarm with its captured remainder.
func (s *Server) ReactivateAlarm(
	ctx context.Context,
	req *pb.ReactivateAlarmRequest,
) (*pb.ReactivateAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deadline, err := s.service.Reactivate(ctx, toDomainActor(req.GetActor()), req.GetAlarmId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.ReactivateAlarmResponse{Deadline: deadline}, nil
}

// ListAlarms returns every alarm the scheduler knows about.
func (s *Server) ListAlarms(ctx context.Context, _ *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	snapshots := s.service.List(ctx)
	alarms := make([]*pb.AlarmSnapshot, 0, len(snapshots))

	for _, snap := range snapshots {
		alarms = append(alarms, &pb.AlarmSnapshot{
			AlarmId:          snap.Alarm.ID,
			GroupId:          snap.Alarm.GroupID,
			RequestedSeconds: snap.Alarm.RequestedSeconds,
			Message:          snap.Alarm.Message,
			Deadline:         snap.Alarm.Deadline,
			Suspended:        snap.Suspended,
			RemainingSeconds: snap.RemainingSeconds,
		})
	}

	return &pb.ListAlarmsResponse{Alarms: alarms}, nil
}

// StreamExpiries delivers expiry notifications to the caller as alarms fire,
// until the caller goes away.
func (s *Server) StreamExpiries(req *pb.StreamExpiriesRequest, stream pb.AlarmScheduler_StreamExpiriesServer) error {
	expiries, unsubscribe := s.service.Subscribe(req.GetGroupId())
	defer unsubscribe()

	ctx := stream.Context()

	for {
		select {
		case <-ctx.Done():
			return nil
		case expiry, ok := <-expiries:
			if !ok {
				return nil
			}

			if err := stream.Send(toProtoExpiry(expiry)); err != nil {
				return err
			}
		}
	}
}

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoExpiry converts a domain Expiry to its protobuf notification.
func toProtoExpiry(expiry domain.Expiry) *pb.ExpiryNotification {
	return &pb.ExpiryNotification{
		AlarmId:          expiry.ID,
		GroupId:          expiry.GroupID,
		RequestedSeconds: expiry.RequestedSeconds,
		Message:          expiry.Message,
		Deadline:         expiry.Deadline,
		FiredAt:          expiry.FiredAt,
	}
}

// toStatusError maps domain and store errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidGroupID),
		errors.Is(err, domain.ErrNegativeSeconds),
		errors.Is(err, domain.ErrMessageTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, core.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, core.ErrAlreadySuspended),
		errors.Is(err, core.ErrNotSuspended):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
