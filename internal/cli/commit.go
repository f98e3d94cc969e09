package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/core"
	"github.com/kilupskalvis/gvc/internal/models"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Record changes to the repository",
	Long: `Create a new commit from the staging area.

Only staged additions and removals are committed; unstaged edits to
tracked files stay in the working directory.`,
	Run: runCommit,
}

var commitMessage string

func init() {
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message (required)")
	commitCmd.MarkFlagRequired("message")
}

func runCommit(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	id, commit, err := core.Commit(c.Config, c.Store, c.Logger, commitMessage, time.Now())
	if err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("[%s] %s\n", models.ShortID(id), commit.Message)
	fmt.Printf(" %d file(s) tracked\n", len(commit.Snapshot))
}
