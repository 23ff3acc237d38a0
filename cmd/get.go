package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read a daemon configuration value",
	Long: `Read a configuration value through the daemon binary.

The key is passed to the daemon's --config interface verbatim; the daemon
owns all key validation and value formatting.

Example:
  ftlconf get dns.upstreams
  ftlconf get webserver.port`,
	Args: cobra.ExactArgs(1),
	Run:  runGet,
}

func runGet(cmd *cobra.Command, args []string) {
	backend := newBackend()

	value, err := backend.Get(args[0])
	checkError(err)

	fmt.Println(value)
}
