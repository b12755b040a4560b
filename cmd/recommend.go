package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get AI match recommendations for your profile",
	Run: func(_ *cobra.Command, _ []string) {
		recommend()
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func recommend() {
	deps, ctx := requireSession()

	recs, err := deps.hub.Recommendations(ctx)
	if err != nil {
		if matchhub.IsNotFound(err) {
			fmt.Println("No profile yet. Run 'jobmatch profile edit' to get recommendations.")
			return
		}
		deps.logger.Fatal("getting recommendations", zap.Error(err))
	}

	deps.logger.Debug("got recommendations", zap.Int("count", len(recs)))

	if len(recs) == 0 {
		fmt.Println("No matches yet. Add more skills to your profile and try again.")
		return
	}

	// Printed in backend order: the service already ranks by score.
	for _, rec := range recs {
		fmt.Printf("%3d%%  %s at %s\n", rec.MatchScore, rec.Title, rec.Company)
		for _, reason := range rec.MatchReasons {
			fmt.Printf("      - %s\n", reason)
		}
		if rec.JobDetails != nil {
			fmt.Printf("      see: jobmatch jobs %s\n", rec.JobDetails.ID)
		}
	}
}
