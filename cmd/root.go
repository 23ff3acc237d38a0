package cmd

import (
	"github.com/braunmar/ftlconf/pkg/config"
	"github.com/braunmar/ftlconf/pkg/ftl"
	"github.com/braunmar/ftlconf/pkg/ui"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ftlconf",
	Short: "Manage the FTL daemon's configuration and PID",
	Long: `ftlconf - A CLI tool for operating the FTL DNS daemon's configuration.

This tool reads and writes daemon configuration values through the daemon
binary's --config interface, edits line-oriented key=value config files,
and resolves and validates the daemon's PID file.`,
	Version: version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the ftlconf configuration file")

	// Add subcommands
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(pidCmd)
	rootCmd.AddCommand(pidFileCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig loads the tool configuration from the --config path.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	checkError(err)
	return cfg
}

// newClient builds the daemon client from the tool configuration.
func newClient() *ftl.Client {
	cfg := loadConfig()
	return ftl.NewClient(cfg.FTLBinary, cfg.FTLConfigFile, cfg.PIDFile)
}

// newBackend exposes the daemon client through the narrow configuration
// interface; get and set never need more than that.
func newBackend() ftl.ConfigBackend {
	return newClient()
}

func checkError(err error) {
	ui.FatalError(err)
}
