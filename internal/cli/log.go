package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/core"
	"github.com/kilupskalvis/gvc/internal/models"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show commit history",
	Long:  `Display the commit history of the current branch, newest first.`,
	Run:   runLog,
}

var (
	logOneline bool
	logLimit   int
)

func init() {
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "Show each commit on a single line")
	logCmd.Flags().IntVarP(&logLimit, "n", "n", 0, "Limit the number of commits to show")
}

func runLog(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	entries, err := core.Log(c.Store, logLimit)
	if err != nil {
		exitError("failed to get commit log: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No commits yet")
		return
	}

	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	for i, entry := range entries {
		if logOneline {
			yellow.Printf("%s ", models.ShortID(entry.ID))
			if i == 0 {
				cyan.Print("(HEAD) ")
			}
			fmt.Println(entry.Commit.Message)
			continue
		}

		yellow.Printf("commit %s", entry.ID)
		if i == 0 {
			cyan.Print(" (HEAD)")
		}
		fmt.Println()
		fmt.Printf("Date:   %s\n", time.Unix(entry.Commit.Timestamp, 0).Format("Mon Jan 2 15:04:05 2006"))
		fmt.Printf("\n    %s\n\n", entry.Commit.Message)
	}
}
