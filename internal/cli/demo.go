package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/notifykit/notifykit/pkg/channel"
	"github.com/notifykit/notifykit/pkg/config"
	"github.com/notifykit/notifykit/pkg/logger"
	"github.com/notifykit/notifykit/pkg/notifier"
)

// Config holds the demo's ambient settings, loaded from the environment.
type Config struct {
	LogLevel  string `env:"NOTIFY_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"NOTIFY_LOG_FORMAT" envDefault:"text"`
}

func newDemoCmd() *cobra.Command {
	var isolate bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference notification scenario",
		Long:  "Subscribes three recipients with different channel preferences, broadcasts an update, unsubscribes one and broadcasts a reminder.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log, err := buildLogger(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			factory := channel.NewFactory(channel.WithOutput(out))
			journal := notifier.NewMemoryJournal()

			opts := []notifier.NotifierOption{
				notifier.WithTranscript(out),
				notifier.WithLogger(log),
			}
			if isolate {
				opts = append(opts, notifier.WithFailureIsolation())
			}
			n := notifier.NewNotifier(opts...)

			ana := notifier.NewRecipient("Ana", "ana@example.com", "+5215512345678", "email", factory,
				notifier.WithJournal(journal))
			luis := notifier.NewRecipient("Luis", "luis@example.com", "+5215587654321", "sms", factory,
				notifier.WithJournal(journal))
			carla := notifier.NewRecipient("Carla", "carla@example.com", "+5215591122334", "push", factory,
				notifier.WithJournal(journal))

			for _, r := range []*notifier.Recipient{ana, luis, carla} {
				if err := n.Subscribe(r); err != nil {
					return err
				}
			}

			if err := n.Publish(ctx, "Nueva actualización disponible: versión 1.2.0"); err != nil {
				return err
			}

			unsubscribe(cmd, n, luis)

			if err := n.Publish(ctx, "Recordatorio: mantenimiento programado mañana 02:00 AM."); err != nil {
				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&isolate, "isolate", false, "continue past failing recipients instead of aborting the broadcast")

	return cmd
}

// unsubscribe removes the recipient, reporting an absent subscription in
// the transcript instead of failing the run.
func unsubscribe(cmd *cobra.Command, n *notifier.Notifier, r *notifier.Recipient) {
	if err := n.Unsubscribe(r); errors.Is(err, notifier.ErrNotSubscribed) {
		fmt.Fprintf(cmd.OutOrStdout(), "[INFO] %s no estaba suscrito.\n", r.Name())
	}
}

func buildLogger(cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("service", "notify")),
	), nil
}
