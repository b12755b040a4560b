package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Run: func(_ *cobra.Command, _ []string) {
		logout()
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func logout() {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	deps.store.Logout()
	fmt.Println("Logged out")
}
