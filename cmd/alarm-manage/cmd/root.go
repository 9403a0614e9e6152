package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
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

	// rootCmd represents the base command for managing scheduled alarms.
	rootCmd = &cobra.Command{
		Use:   "alarm-manage",
		Short: "Manage scheduled alarms.",
		Long: `Inspects and manipulates alarms held by the scheduler: list them,
cancel one, give one a fresh duration, or suspend and reactivate one.`,
	}
)

// Execute runs the alarm-manage CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext builds a context canceled by SIGTERM/SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// sharedOptions builds the connection settings from the persistent flags.
func sharedOptions() client.Options {
	return client.Options{
		ConfigPath:    cfgPath,
		ServerAddress: serverAddress,
	}
}

// parseAlarmID converts the positional alarm-id argument.
func parseAlarmID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

//nolint:gochecknoinits,funlen // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "scheduler address override (host:port)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every alarm the scheduler holds.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			opts := sharedOptions()

			return client.RunList(ctx, &opts)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "cancel <alarm-id>",
		Short: "Remove a scheduled or suspended alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			id, err := parseAlarmID(args[0])
			if err != nil {
				return err
			}

			return client.RunCancel(ctx, &client.ManageOptions{
				Options: sharedOptions(),
				AlarmID: id,
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "change <alarm-id> <seconds>",
		Short: "Give an alarm a fresh duration measured from now.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			id, err := parseAlarmID(args[0])
			if err != nil {
				return err
			}

			seconds, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			return client.RunChange(ctx, &client.ManageOptions{
				Options: sharedOptions(),
				AlarmID: id,
				Seconds: seconds,
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "suspend <alarm-id>",
		Short: "Park an alarm, keeping its remaining time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			id, err := parseAlarmID(args[0])
			if err != nil {
				return err
			}

			return client.RunSuspend(ctx, &client.ManageOptions{
				Options: sharedOptions(),
				AlarmID: id,
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reactivate <alarm-id>",
		Short: "Rearm a suspended alarm with its remaining time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			id, err := parseAlarmID(args[0])
			if err != nil {
				return err
			}

			return client.RunReactivate(ctx, &client.ManageOptions{
				Options: sharedOptions(),
				AlarmID: id,
			})
		},
	})
}
