package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
	"github.com/jobmatch-io/jobmatch-cli/internal/session"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your skills profile",
	Run: func(_ *cobra.Command, _ []string) {
		showProfile()
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Create or replace your skills profile",
	Run: func(_ *cobra.Command, _ []string) {
		editProfile()
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileEditCmd)
}

func showProfile() {
	deps, ctx := requireSession()

	profile, err := deps.hub.GetProfile(ctx)
	if err != nil {
		// No profile yet is an invitation, not a failure.
		if matchhub.IsNotFound(err) {
			fmt.Println("No profile yet. Run 'jobmatch profile edit' to create one.")
			return
		}
		deps.logger.Fatal("getting profile", zap.Error(err))
	}

	printProfile(profile)
}

func editProfile() {
	deps, ctx := requireSession()

	current, err := deps.hub.GetProfile(ctx)
	if err != nil && !matchhub.IsNotFound(err) {
		deps.logger.Fatal("getting profile", zap.Error(err))
	}
	if current == nil {
		current = &matchhub.Profile{PreferredJobType: matchhub.JobTypeAny}
	}

	profile, err := promptProfile(current)
	if err != nil {
		deps.logger.Fatal("reading profile form", zap.Error(err))
	}

	saved, err := deps.hub.SaveProfile(ctx, profile)
	if err != nil {
		if matchhub.IsValidation(err) {
			deps.logger.Fatal("profile rejected", zap.String("reason", matchhub.UserMessage(err, "invalid profile")))
		}
		deps.logger.Fatal("saving profile", zap.Error(err))
	}

	fmt.Println("Profile saved successfully!")
	printProfile(saved)
}

func promptProfile(current *matchhub.Profile) (*matchhub.Profile, error) {
	name, err := (&promptui.Prompt{Label: "Full name", Default: current.Name}).Run()
	if err != nil {
		return nil, err
	}

	location, err := (&promptui.Prompt{Label: "Location (City, State/Country)", Default: current.Location}).Run()
	if err != nil {
		return nil, err
	}

	years, err := promptYears(current.YearsOfExperience)
	if err != nil {
		return nil, err
	}

	skillsInput, err := (&promptui.Prompt{
		Label:   "Skills (comma separated)",
		Default: strings.Join(current.Skills, ", "),
	}).Run()
	if err != nil {
		return nil, err
	}

	jobTypes := []string{matchhub.JobTypeRemote, matchhub.JobTypeOnsite, matchhub.JobTypeHybrid, matchhub.JobTypeAny}
	typePrompt := promptui.Select{
		Label:     "Preferred job type",
		Items:     jobTypes,
		CursorPos: indexOf(jobTypes, current.PreferredJobType),
	}
	_, jobType, err := typePrompt.Run()
	if err != nil {
		return nil, err
	}

	return &matchhub.Profile{
		Name:              name,
		Location:          location,
		YearsOfExperience: years,
		Skills:            splitSkills(skillsInput),
		PreferredJobType:  jobType,
	}, nil
}

func promptYears(current int) (int, error) {
	prompt := promptui.Prompt{
		Label:   "Years of experience",
		Default: strconv.Itoa(current),
		Validate: func(input string) error {
			n, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil {
				return fmt.Errorf("enter a whole number")
			}
			if n < 0 {
				return fmt.Errorf("cannot be negative")
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(value))
}

func splitSkills(input string) []string {
	var skills []string
	for _, skill := range strings.Split(input, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return 0
}

func printProfile(profile *matchhub.Profile) {
	fmt.Printf("%s, %s\n", profile.Name, profile.Location)
	fmt.Printf("  experience: %d years\n", profile.YearsOfExperience)
	fmt.Printf("  preferred:  %s\n", profile.PreferredJobType)
	fmt.Printf("  skills:     %s\n", strings.Join(profile.Skills, ", "))
}

// requireSession restores the persisted session and exits with a hint
// when it resolves to anonymous.
func requireSession() (*appDeps, context.Context) {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	ctx := context.Background()
	if deps.store.Restore(ctx) != session.StateAuthenticated {
		deps.logger.Fatal("not logged in", zap.String("hint", "run 'jobmatch login' first"))
	}

	return deps, ctx
}
