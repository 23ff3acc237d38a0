package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/braunmar/ftlconf/pkg/ftl"
	"github.com/braunmar/ftlconf/pkg/ui"
	"github.com/braunmar/ftlconf/pkg/watch"

	"github.com/spf13/cobra"
)

var watchSchedule string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the daemon until interrupted",
	Long: `Monitor the daemon: probe its PID on a schedule and report changes
to its config file. Runs until interrupted (Ctrl+C).

The schedule is a cron expression or descriptor like "@every 30s".

Example:
  ftlconf watch
  ftlconf watch --schedule "@every 5s"`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "", "liveness probe schedule (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	schedule := watchSchedule
	if schedule == "" {
		schedule = cfg.WatchSchedule
	}

	client := ftl.NewClient(cfg.FTLBinary, cfg.FTLConfigFile, cfg.PIDFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.InfoF("Watching daemon (probe %s, config %s), Ctrl+C to exit", schedule, cfg.FTLConfigFile)
	checkError(watch.New(client, schedule).Run(ctx))
}
