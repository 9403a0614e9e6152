package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-scheduler/internal/config"
	"github.com/oshokin/alarm-scheduler/internal/service/client"
	"github.com/oshokin/alarm-scheduler/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from configuration.
	serverAddress string
	// groupID filters notifications to one display group.
	groupID int64

	// rootCmd represents the base command for watching expiry notifications.
	rootCmd = &cobra.Command{
		Use:   "alarm-watch",
		Short: "Watch alarms as they fire.",
		Long: `Subscribes to the scheduler's expiry stream and prints each alarm as it
fires. Runs until interrupted or the server closes the stream.

By default every group is watched; use --group to follow a single one.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return client.RunWatch(ctx, &client.WatchOptions{
				Options: client.Options{
					ConfigPath:    cfgPath,
					ServerAddress: serverAddress,
				},
				GroupID: groupID,
			})
		},
	}
)

// Execute runs the alarm-watch CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "scheduler address override (host:port)")
	rootCmd.Flags().Int64VarP(&groupID, "group", "g", 0, "display group to watch (0 watches all groups)")
}
