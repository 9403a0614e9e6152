package scheduler

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
	core "github.com/oshokin/alarm-scheduler/internal/scheduler"
)

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	// submissions records accepted submissions.
	submissions []domain.Submission
	// cancelled records ids passed to Cancel.
	cancelled []int64
	// snapshots is returned from List.
	snapshots []domain.Snapshot
	// expiries is handed out by Subscribe.
	expiries chan domain.Expiry
	// err, when set, is returned from every mutating operation.
	err error
}

func (f *fakeService) Submit(_ context.Context, _ *domain.Actor, sub domain.Submission) (int64, error) {
	if err := sub.Validate(); err != nil {
		return 0, err
	}

	if f.err != nil {
		return 0, f.err
	}

	f.submissions = append(f.submissions, sub)

	return 1_000_000 + sub.RequestedSeconds, nil
}

func (f *fakeService) Cancel(_ context.Context, _ *domain.Actor, id int64) error {
	if f.err != nil {
		return f.err
	}

	f.cancelled = append(f.cancelled, id)

	return nil
}

func (f *fakeService) Change(_ context.Context, _ *domain.Actor, _, seconds int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	return 1_000_000 + seconds, nil
}

func (f *fakeService) Suspend(_ context.Context, _ *domain.Actor, _ int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	return 42, nil
}

func (f *fakeService) Reactivate(_ context.Context, _ *domain.Actor, _ int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	return 1_000_042, nil
}

func (f *fakeService) List(context.Context) []domain.Snapshot {
	return f.snapshots
}

func (f *fakeService) Subscribe(int64) (<-chan domain.Expiry, func()) {
	return f.expiries, func() {}
}

// fakeExpiryStream implements pb.AlarmScheduler_StreamExpiriesServer,
// collecting sent notifications.
type fakeExpiryStream struct {
	grpc.ServerStream

	ctx  context.Context
	sent []*pb.ExpiryNotification
}

func (f *fakeExpiryStream) Context() context.Context { return f.ctx }

func (f *fakeExpiryStream) Send(m *pb.ExpiryNotification) error {
	f.sent = append(f.sent, m)

	return nil
}

// TestServer_SubmitAlarm_Validation ensures malformed submissions are turned
// into InvalidArgument errors and never recorded.
func TestServer_SubmitAlarm_Validation(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	s := NewServer(svc)

	_, err := s.SubmitAlarm(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Zero alarm id.
	_, err = s.SubmitAlarm(context.Background(), &pb.SubmitAlarmRequest{
		AlarmId:          0,
		GroupId:          1,
		RequestedSeconds: 5,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Zero group id.
	_, err = s.SubmitAlarm(context.Background(), &pb.SubmitAlarmRequest{
		AlarmId:          1,
		GroupId:          0,
		RequestedSeconds: 5,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	require.Empty(t, svc.submissions)
}

// TestServer_SubmitAlarm_Roundtrip exercises a successful submission.
func TestServer_SubmitAlarm_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	s := NewServer(svc)

	resp, err := s.SubmitAlarm(context.Background(), &pb.SubmitAlarmRequest{
		AlarmId:          3,
		GroupId:          2,
		RequestedSeconds: 10,
		Message:          "stand up",
		Actor: &pb.SystemActor{
			Hostname: "test-hostname",
			Username: "test-user",
		},
	})

	require.NoError(t, err)
	require.Equal(t, int64(1_000_010), resp.GetDeadline())
	require.Len(t, svc.submissions, 1)
	require.Equal(t, "stand up", svc.submissions[0].Message)
}

// TestServer_ErrorMapping verifies store errors become gRPC status codes.
func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := map[codes.Code]error{
		codes.NotFound:           core.ErrNotFound,
		codes.FailedPrecondition: core.ErrAlreadySuspended,
	}

	for code, svcErr := range cases {
		s := NewServer(&fakeService{err: svcErr})

		_, err := s.ChangeAlarm(context.Background(), &pb.ChangeAlarmRequest{
			AlarmId:          1,
			RequestedSeconds: 5,
		})
		require.Equal(t, code, status.Code(err))

		err2 := func() error {
			_, cancelErr := s.SuspendAlarm(context.Background(), &pb.SuspendAlarmRequest{AlarmId: 1})
			return cancelErr
		}()
		require.Equal(t, code, status.Code(err2))
	}
}

// TestServer_ListAlarms converts snapshots into protobuf form.
func TestServer_ListAlarms(t *testing.T) {
	t.Parallel()

	svc := &fakeService{
		snapshots: []domain.Snapshot{
			{
				Alarm: domain.Alarm{
					ID:               1,
					GroupID:          2,
					RequestedSeconds: 30,
					Message:          "brew coffee",
					Deadline:         1_000_030,
				},
				RemainingSeconds: 12,
			},
			{
				Alarm: domain.Alarm{
					ID:      9,
					GroupID: 2,
				},
				Suspended:        true,
				RemainingSeconds: 7,
			},
		},
	}
	s := NewServer(svc)

	resp, err := s.ListAlarms(context.Background(), new(pb.ListAlarmsRequest))
	require.NoError(t, err)
	require.Len(t, resp.GetAlarms(), 2)
	require.Equal(t, int64(1), resp.GetAlarms()[0].GetAlarmId())
	require.Equal(t, "brew coffee", resp.GetAlarms()[0].GetMessage())
	require.True(t, resp.GetAlarms()[1].GetSuspended())
	require.Equal(t, int64(7), resp.GetAlarms()[1].GetRemainingSeconds())
}

// TestServer_StreamExpiries forwards published expiries until the
// subscription channel closes.
func TestServer_StreamExpiries(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		svc := &fakeService{expiries: make(chan domain.Expiry)}
		s := NewServer(svc)
		stream := &fakeExpiryStream{ctx: context.Background()}

		done := make(chan error, 1)

		go func() {
			done <- s.StreamExpiries(&pb.StreamExpiriesRequest{}, stream)
		}()

		svc.expiries <- domain.Expiry{ID: 1, GroupID: 2, Message: "first"}
		svc.expiries <- domain.Expiry{ID: 2, GroupID: 2, Message: "second"}
		close(svc.expiries)

		require.NoError(t, <-done)
		require.Len(t, stream.sent, 2)
		require.Equal(t, int64(1), stream.sent[0].GetAlarmId())
		require.Equal(t, "second", stream.sent[1].GetMessage())
	})
}
