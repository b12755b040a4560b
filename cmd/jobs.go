package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/filtering"
	"github.com/jobmatch-io/jobmatch-cli/internal/logger"
	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

const descriptionPreviewLimit = 160

var jobsCmd = &cobra.Command{
	Use:   "jobs [id]",
	Short: "List job postings or show one by id",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			showJob(args[0])
			return
		}
		listJobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().StringP("search", "s", "", "match jobs by title, company, description or skill")
	jobsCmd.Flags().StringP("type", "t", filtering.All, "job type: remote, onsite, hybrid or all")
	jobsCmd.Flags().StringP("location", "l", filtering.All, "location substring, see --locations for known values")
	jobsCmd.Flags().Bool("locations", false, "print the known locations and exit")
}

func listJobs(cmd *cobra.Command) {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	jobs, err := deps.hub.ListJobs(context.Background())
	if err != nil {
		deps.logger.Fatal("getting available jobs", zap.Error(err))
	}

	if mustBool(cmd, "locations") {
		for _, location := range filtering.Locations(jobs) {
			fmt.Println(location)
		}
		return
	}

	query := filtering.Query{
		Text:     mustString(cmd, "search"),
		JobType:  mustString(cmd, "type"),
		Location: mustString(cmd, "location"),
	}

	filtered := jobs
	if !query.Empty() {
		filtered = filtering.Run(deps.logger, filtering.Steps(query), jobs)
	}

	deps.logger.Debug("listing jobs",
		zap.Int("fetched", jobs.Len()),
		zap.Int("matched", filtered.Len()),
	)

	if filtered.Len() == 0 {
		fmt.Println("No jobs match your search criteria. Try adjusting your filters.")
		return
	}

	for _, job := range filtered.Items {
		printJobSummary(job)
	}
}

func showJob(id string) {
	deps, err := newAppDeps()
	if err != nil {
		fatalSetup(err)
	}

	job, err := deps.hub.GetJob(context.Background(), id)
	if err != nil {
		if matchhub.IsNotFound(err) {
			fmt.Println("Job not found")
			return
		}
		deps.logger.Fatal("getting job details", zap.Error(err))
	}

	fmt.Printf("%s at %s\n", job.Title, job.Company)
	fmt.Printf("  location: %s (%s)\n", job.Location, job.JobType)
	if job.Salary != "" {
		fmt.Printf("  salary:   %s\n", job.Salary)
	}
	fmt.Printf("  skills:   %s\n", strings.Join(job.Skills, ", "))
	fmt.Printf("\n%s\n", job.Description)
}

func printJobSummary(job *matchhub.Job) {
	fmt.Printf("%s  %s / %s / %s / %s\n", job.ID, job.Title, job.Company, job.Location, job.JobType)
	if len(job.Skills) > 0 {
		fmt.Printf("    skills: %s\n", strings.Join(job.Skills, ", "))
	}
	if preview := logger.Truncate(job.Description, descriptionPreviewLimit); preview != "" {
		fmt.Printf("    %s\n", preview)
	}
}

func mustString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return v
}
