package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/core"
)

var addCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Add file contents to the staging area",
	Long: `Stage files for the next commit.

Examples:
  gvc add notes.txt         Stage a single file
  gvc add src docs          Stage every file under two directories
  gvc add .                 Stage everything in the working directory`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	staged, err := core.Add(c.Config, c.Store, c.Logger, args)
	if err != nil {
		exitError("%v", err)
	}

	if staged == 0 {
		fmt.Println("No files staged")
		return
	}
	color.New(color.FgGreen).Printf("Staged %d file(s)\n", staged)
}
