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
	// alarmID identifies the new alarm.
	alarmID int64
	// groupID is the display group the alarm belongs to.
	groupID int64
	// seconds is the requested duration until the alarm fires.
	seconds int64

	// rootCmd represents the base command for submitting one alarm.
	rootCmd = &cobra.Command{
		Use:   "alarm-submit [message]",
		Short: "Schedule a new alarm.",
		Long: `Submits one alarm to the scheduler. The alarm fires once, after the
requested number of seconds, and its message is delivered to every watcher
subscribed to its group.

The message is optional and limited to 127 bytes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var message string
			if len(args) > 0 {
				message = args[0]
			}

			return client.RunSubmit(ctx, &client.SubmitOptions{
				Options: client.Options{
					ConfigPath:    cfgPath,
					ServerAddress: serverAddress,
				},
				AlarmID: alarmID,
				GroupID: groupID,
				Seconds: seconds,
				Message: message,
			})
		},
	}
)

// Execute runs the alarm-submit CLI and exits with non-zero status on error.
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
	rootCmd.Flags().Int64VarP(&alarmID, "id", "i", 0, "alarm identifier (positive, chosen by the caller)")
	rootCmd.Flags().Int64VarP(&groupID, "group", "g", 1, "display group the alarm belongs to")
	rootCmd.Flags().Int64VarP(&seconds, "seconds", "t", 0, "seconds until the alarm fires")

	_ = rootCmd.MarkFlagRequired("id")
	_ = rootCmd.MarkFlagRequired("seconds")
}
