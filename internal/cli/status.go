package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the working tree status",
	Long: `Show branches, staged additions and removals, unstaged
modifications, and untracked files.`,
	Run: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	report, err := core.Status(c.Config, c.Store, c.Logger)
	if err != nil {
		exitError("%v", err)
	}

	fmt.Println(report.String())
}
