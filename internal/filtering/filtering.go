// Package filtering narrows an in-memory job list with pure predicates.
// It performs no I/O and never mutates its input.
package filtering

import (
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

// All matches everything for the job type and location filters.
const All = "all"

// Filter is a single predicate applied to every job during a query.
type Filter interface {
	Name() string
	Match(job *matchhub.Job) bool
}

// Query describes one listing request. Empty text and "all" selectors
// match everything.
type Query struct {
	Text     string
	JobType  string
	Location string
}

// Empty reports whether the query filters nothing out.
func (q Query) Empty() bool {
	return q.Text == "" && matchesAll(q.JobType) && matchesAll(q.Location)
}

func matchesAll(v string) bool {
	return v == "" || v == All
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Steps builds the filter chain for a query: text, job type, location.
// A job passes the chain only when every step matches.
func Steps(q Query) []Filter {
	return []Filter{
		newTextFilter(q.Text),
		newJobTypeFilter(q.JobType),
		newLocationFilter(q.Location),
	}
}

// Run applies the steps in order, returning a fresh list that preserves
// the relative order of the input. The input list is left untouched.
// A nil logger disables step reporting.
func Run(logger *zap.Logger, steps []Filter, jobs *matchhub.Jobs) *matchhub.Jobs {
	items := make([]*matchhub.Job, len(jobs.Items))
	copy(items, jobs.Items)

	for _, step := range steps {
		initial := len(items)

		kept := items[:0:0]
		for _, job := range items {
			if step.Match(job) {
				kept = append(kept, job)
			}
		}
		items = kept

		if logger != nil {
			logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", initial),
				zap.Int("dropped", initial-len(items)),
				zap.Int("left", len(items)),
			)
		}
	}

	return &matchhub.Jobs{Items: items}
}

// Apply is the one-shot form of Steps plus Run.
func Apply(jobs *matchhub.Jobs, q Query) *matchhub.Jobs {
	return Run(nil, Steps(q), jobs)
}
