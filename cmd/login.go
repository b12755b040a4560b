package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the jobmatch service",
	Run: func(_ *cobra.Command, _ []string) {
		login()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func login() {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	email, password, err := promptCredentials()
	if err != nil {
		deps.logger.Fatal("reading credentials", zap.Error(err))
	}

	ctx := context.Background()

	if !deps.store.Login(ctx, email, password) {
		deps.logger.Fatal("login failed", zap.String("reason", deps.store.Err()))
	}

	snap := deps.store.Snapshot()
	fmt.Printf("Logged in as %s\n", snap.User.Email)
}

func promptCredentials() (string, string, error) {
	emailPrompt := promptui.Prompt{Label: "Email"}
	email, err := emailPrompt.Run()
	if err != nil {
		return "", "", err
	}

	passwordPrompt := promptui.Prompt{Label: "Password", Mask: '*'}
	password, err := passwordPrompt.Run()
	if err != nil {
		return "", "", err
	}

	return email, password, nil
}
