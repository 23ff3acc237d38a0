package cmd

import (
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a daemon configuration value",
	Long: `Write a configuration value through the daemon binary.

Key and value are passed to the daemon's --config interface verbatim and
the daemon's exit status decides success. Nothing is printed on success.

Example:
  ftlconf set dns.blockESNI false
  ftlconf set webserver.port 8080`,
	Args: cobra.ExactArgs(2),
	Run:  runSet,
}

func runSet(cmd *cobra.Command, args []string) {
	backend := newBackend()
	checkError(backend.Set(args[0], args[1]))
}
