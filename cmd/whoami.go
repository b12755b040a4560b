package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobmatch-io/jobmatch-cli/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the stored session",
	Run: func(_ *cobra.Command, _ []string) {
		whoami()
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func whoami() {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	state := deps.store.Restore(context.Background())
	if state != session.StateAuthenticated {
		fmt.Println("anonymous")
		return
	}

	fmt.Println(deps.store.Snapshot().User.Email)
}
