//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/alarm-scheduler/internal/config"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
)

// Client wraps the gRPC AlarmScheduler client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the scheduler.
	conn *grpc.ClientConn
	// api is the generated AlarmScheduler client interface.
	api pb.AlarmSchedulerClient

	// callTimeout is the default timeout for individual unary RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for unary service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial establishes a gRPC connection to the alarm scheduler.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial alarm scheduler: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmSchedulerClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// SubmitAlarm schedules a new alarm and returns the server response.
func (c *Client) SubmitAlarm(
	ctx context.Context,
	actor *pb.SystemActor,
	request *pb.SubmitAlarmRequest,
) (*pb.SubmitAlarmResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	if request == nil {
		request = new(pb.SubmitAlarmRequest)
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request.Actor = actor

	response, err := c.api.SubmitAlarm(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("submit alarm: %w", err)
	}

	return response, nil
}

// CancelAlarm removes a scheduled or suspended alarm.
func (c *Client) CancelAlarm(ctx context.Context, actor *pb.SystemActor, alarmID int64) error {
	if actor == nil {
		return errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.CancelAlarm(callCtx, &pb.CancelAlarmRequest{
		AlarmId: alarmID,
		Actor:   actor,
	}); err != nil {
		return fmt.Errorf("cancel alarm: %w", err)
	}

	return nil
}

// ChangeAlarm gives an alarm a fresh duration and returns its new deadline.
func (c *Client) ChangeAlarm(
	ctx context.Context,
	actor *pb.SystemActor,
	alarmID, seconds int64,
) (*pb.ChangeAlarmResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ChangeAlarm(callCtx, &pb.ChangeAlarmRequest{
		AlarmId:          alarmID,
		RequestedSeconds: seconds,
		Actor:            actor,
	})
	if err != nil {
		return nil, fmt.Errorf("change alarm: %w", err)
	}

	return response, nil
}

// SuspendAlarm parks an alarm and returns its captured remaining seconds.
func (c *Client) SuspendAlarm(
	ctx context.Context,
	actor *pb.SystemActor,
	alarmID int64,
) (*pb.SuspendAlarmResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.SuspendAlarm(callCtx, &pb.SuspendAlarmRequest{
		AlarmId: alarmID,
		Actor:   actor,
	})
	if err != nil {
		return nil, fmt.Errorf("suspend alarm: %w", err)
	}

	return response, nil
}

// ReactivateAlarm rearms a suspended alarm and returns its new deadline.
func (c *Client) ReactivateAlarm(
	ctx context.Context,
	actor *pb.SystemActor,
	alarmID int64,
) (*pb.ReactivateAlarmResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ReactivateAlarm(callCtx, &pb.ReactivateAlarmRequest{
		AlarmId: alarmID,
		Actor:   actor,
	})
	if err != nil {
		return nil, fmt.Errorf("reactivate alarm: %w", err)
	}

	return response, nil
}

// ListAlarms returns every alarm the scheduler knows about.
func (c *Client) ListAlarms(ctx context.Context) (*pb.ListAlarmsResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ListAlarms(callCtx, new(pb.ListAlarmsRequest))
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return response, nil
}

// StreamExpiries opens a long-lived expiry subscription. The call timeout is
// deliberately not applied: the stream lives until the context is cancelled.
func (c *Client) StreamExpiries(ctx context.Context, groupID int64) (pb.AlarmScheduler_StreamExpiriesClient, error) {
	stream, err := c.api.StreamExpiries(ctx, &pb.StreamExpiriesRequest{GroupId: groupID})
	if err != nil {
		return nil, fmt.Errorf("stream expiries: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
