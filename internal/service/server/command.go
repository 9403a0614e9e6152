package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-scheduler/internal/api/grpc/scheduler"
	"github.com/oshokin/alarm-scheduler/internal/config"
	"github.com/oshokin/alarm-scheduler/internal/logger"
	pb "github.com/oshokin/alarm-scheduler/internal/pb/v1"
	core "github.com/oshokin/alarm-scheduler/internal/scheduler"
)

const (
	// fileLogMaxAge is how long rotated log files are kept.
	fileLogMaxAge = 7 * 24 * time.Hour
	// fileLogRotationTime is how often a new log file is started.
	fileLogRotationTime = 24 * time.Hour
)

// Options controls the alarm-scheduler process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the scheduling worker and the gRPC server and blocks until the
// context is canceled or the server stops.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-scheduler")

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = applyLogSettings(settings); err != nil {
		return fmt.Errorf("apply log settings: %w", err)
	}

	// Refuse to start a second queue on the same host.
	if err = ensureSingleInstance(); err != nil {
		return err
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	store := core.NewStore()
	expiryHub := newHub()
	worker := core.New(store, expiryHub)
	svc := newService(store, expiryHub, settings.MaxMessageBytes)

	// Setup TCP listener for the gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAlarmSchedulerServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Alarm scheduler listening", "listen_address", listenAddress)

	group, groupCtx := errgroup.WithContext(ctx)

	// The worker owns the deadline clock; it exits cleanly on shutdown.
	group.Go(func() error {
		if workerErr := worker.Run(groupCtx); workerErr != nil && !errors.Is(workerErr, context.Canceled) {
			return fmt.Errorf("run worker: %w", workerErr)
		}

		return nil
	})

	group.Go(func() error {
		if serveErr := grpcServer.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", serveErr)
		}

		return nil
	})

	// GracefulStop unblocks Serve once the context is done.
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	logger.Info(ctx, "Scheduler stopped")

	return nil
}

// applyLogSettings configures the global logger from the loaded settings:
// the minimum level, and optionally a rotating log file teed with stdout.
func applyLogSettings(settings *config.Config) error {
	level, _ := logger.ParseLogLevel(settings.LogLevel)
	logger.SetLevel(level)

	if settings.LogFile == "" {
		return nil
	}

	fileLog, err := rotatelogs.New(
		settings.LogFile,
		rotatelogs.WithMaxAge(fileLogMaxAge),
		rotatelogs.WithRotationTime(fileLogRotationTime),
	)
	if err != nil {
		return fmt.Errorf("open rotating log %q: %w", settings.LogFile, err)
	}

	logger.SetLogger(logger.NewWithWriter(level, io.MultiWriter(os.Stdout, fileLog)))

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts the port from
// configAddr and binds on all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
