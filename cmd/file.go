package cmd

import (
	"github.com/braunmar/ftlconf/pkg/confedit"

	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Edit line-oriented key=value config files",
	Long: `Edit line-oriented configuration files made of bare tokens and
key=value pairs, one entry per line.

Matching is anchored to the key boundary: a line matches a key when it is
exactly that key or starts with "key=".`,
}

var fileSetCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Add or update a key=value line",
	Long: `Add or update a key=value line in the file, creating the file if
needed. All lines carrying the key are collapsed into a single key=value
line.

Example:
  ftlconf file set /etc/pihole/setupVars.conf BLOCKING_ENABLED true`,
	Args: cobra.ExactArgs(3),
	Run:  runFileSet,
}

var fileAddKeyCmd = &cobra.Command{
	Use:   "add-key <file> <key>",
	Short: "Add a bare key line",
	Long: `Append the key as its own line unless any line already carries it,
creating the file if needed. Repeated calls never duplicate the key.

Example:
  ftlconf file add-key /etc/pihole/setupVars.conf QUERY_LOGGING`,
	Args: cobra.ExactArgs(2),
	Run:  runFileAddKey,
}

var fileRemoveCmd = &cobra.Command{
	Use:   "remove <file> <key>",
	Short: "Remove all lines for a key",
	Long: `Delete every line carrying the key. A missing file or an absent
key is a no-op.

Example:
  ftlconf file remove /etc/pihole/setupVars.conf BLOCKING_ENABLED`,
	Args: cobra.ExactArgs(2),
	Run:  runFileRemove,
}

func init() {
	fileCmd.AddCommand(fileSetCmd)
	fileCmd.AddCommand(fileAddKeyCmd)
	fileCmd.AddCommand(fileRemoveCmd)
}

func runFileSet(cmd *cobra.Command, args []string) {
	checkError(confedit.SetValue(args[0], args[1], args[2]))
}

func runFileAddKey(cmd *cobra.Command, args []string) {
	checkError(confedit.AddKey(args[0], args[1]))
}

func runFileRemove(cmd *cobra.Command, args []string) {
	checkError(confedit.RemoveKey(args[0], args[1]))
}
