package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/core"
	"github.com/kilupskalvis/gvc/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gvc repository",
	Long: `Initialize a new gvc repository in the current directory.
This creates a .gvc directory to store version control data.`,
	Run: runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	// Check if already initialized, here or in any parent
	if _, err := config.FindGVCRoot(""); err == nil {
		exitError("gvc repository already exists")
	}

	cfg, err := config.Initialize("")
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to create store: %v", err)
	}
	defer st.Close()

	if err := core.InitRepository(cfg, st); err != nil {
		exitError("failed to initialize repository: %v", err)
	}

	fmt.Printf("Initialized empty gvc repository in %s/\n", config.GVCDir)
}
