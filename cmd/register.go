package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
	"github.com/jobmatch-io/jobmatch-cli/internal/session"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a jobmatch account",
	Run: func(_ *cobra.Command, _ []string) {
		register()
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func register() {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	email, password, err := promptCredentials()
	if err != nil {
		deps.logger.Fatal("reading credentials", zap.Error(err))
	}

	confirmPrompt := promptui.Prompt{Label: "Confirm password", Mask: '*'}
	confirm, err := confirmPrompt.Run()
	if err != nil {
		deps.logger.Fatal("reading credentials", zap.Error(err))
	}

	// Reject bad forms before anything touches the network.
	if err := session.ValidateRegistration(email, password, confirm); err != nil {
		deps.logger.Fatal("registration rejected", zap.String("reason", matchhub.UserMessage(err, "invalid registration form")))
	}

	ctx := context.Background()

	if !deps.store.Register(ctx, email, password) {
		deps.logger.Fatal("registration failed", zap.String("reason", deps.store.Err()))
	}

	snap := deps.store.Snapshot()
	fmt.Printf("Registered and logged in as %s\n", snap.User.Email)
	fmt.Println("Create your profile with 'jobmatch profile edit' to get recommendations.")
}
