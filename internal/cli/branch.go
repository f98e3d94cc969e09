package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/core"
	"github.com/kilupskalvis/gvc/internal/models"
)

var branchCmd = &cobra.Command{
	Use:   "branch [name]",
	Short: "List or create branches",
	Long: `Manage branches in the gvc repository.

Without arguments, lists all branches.
With a name argument, creates a new branch at the current commit.

Examples:
  gvc branch              # List all branches
  gvc branch feature      # Create 'feature' branch at the current commit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBranch,
}

func runBranch(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	st := c.Store

	// Create branch
	if len(args) > 0 {
		name := args[0]
		if err := core.CreateBranch(st, c.Logger, name); err != nil {
			exitError("%v", err)
		}

		branch, _ := st.GetBranch(name)
		if branch != nil && branch.CommitID != "" {
			fmt.Printf("Created branch '%s' at %s\n", name, models.ShortID(branch.CommitID))
		} else {
			fmt.Printf("Created branch '%s'\n", name)
		}
		return
	}

	// List branches
	branches, current, err := core.ListBranches(st)
	if err != nil {
		exitError("failed to list branches: %v", err)
	}

	green := color.New(color.FgGreen)
	for _, branch := range branches {
		if branch.Name == current {
			green.Printf("* %s\n", branch.Name)
		} else {
			fmt.Printf("  %s\n", branch.Name)
		}
	}
}
