package filtering

import (
	"strings"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

type textFilter struct {
	needle string
}

// newTextFilter matches the search term case-insensitively against the
// title, company, description or any skill tag. An empty term matches
// everything.
func newTextFilter(text string) Filter {
	return &textFilter{needle: strings.ToLower(text)}
}

func (f *textFilter) Name() string { return "text" }

func (f *textFilter) Match(job *matchhub.Job) bool {
	if f.needle == "" {
		return true
	}

	for _, field := range []string{job.Title, job.Company, job.Description} {
		if strings.Contains(strings.ToLower(field), f.needle) {
			return true
		}
	}

	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), f.needle) {
			return true
		}
	}

	return false
}

type jobTypeFilter struct {
	jobType string
}

func newJobTypeFilter(jobType string) Filter {
	return &jobTypeFilter{jobType: jobType}
}

func (f *jobTypeFilter) Name() string { return "job_type" }

func (f *jobTypeFilter) Match(job *matchhub.Job) bool {
	return matchesAll(f.jobType) || job.JobType == f.jobType
}

type locationFilter struct {
	location string
}

// newLocationFilter matches the raw backend location string, so the
// comparison stays case-sensitive.
func newLocationFilter(location string) Filter {
	return &locationFilter{location: location}
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Match(job *matchhub.Job) bool {
	return matchesAll(f.location) || strings.Contains(job.Location, f.location)
}
