package cli

import (
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/core"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Remove files from tracking",
	Long: `Unstage files staged for addition, or stage tracked files for
removal. A file staged for removal is deleted from the working
directory when the next commit is created.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	if err := core.Remove(c.Config, c.Store, c.Logger, args); err != nil {
		exitError("%v", err)
	}
}
