package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

func sampleJobs() *matchhub.Jobs {
	return &matchhub.Jobs{Items: []*matchhub.Job{
		{
			ID:       "1",
			Title:    "Backend Engineer",
			Company:  "Acme",
			Location: "Austin, TX",
			JobType:  "remote",
			Skills:   []string{"Go"},
		},
		{
			ID:       "2",
			Title:    "Frontend Dev",
			Company:  "Globex",
			Location: "Austin, TX",
			JobType:  "onsite",
			Skills:   []string{"React"},
		},
		{
			ID:          "3",
			Title:       "Data Analyst",
			Company:     "Initech",
			Location:    "Portland, OR",
			JobType:     "hybrid",
			Description: "SQL dashboards and reporting",
			Skills:      []string{"SQL", "Python"},
		},
	}}
}

func ids(jobs *matchhub.Jobs) []string {
	out := make([]string, 0, jobs.Len())
	for _, job := range jobs.Items {
		out = append(out, job.ID)
	}
	return out
}

func TestApplyIdentity(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs()
	got := Apply(jobs, Query{Text: "", JobType: All, Location: All})

	assert.Equal(t, ids(jobs), ids(got))
}

func TestApplySkillTextMatch(t *testing.T) {
	t.Parallel()

	got := Apply(sampleJobs(), Query{Text: "go", JobType: All, Location: All})

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestApplyTextMatchesAcrossFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "title", text: "engineer", want: []string{"1"}},
		{name: "company", text: "globex", want: []string{"2"}},
		{name: "description", text: "dashboards", want: []string{"3"}},
		{name: "skill substring", text: "sql", want: []string{"3"}},
		{name: "no match", text: "kubernetes", want: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(sampleJobs(), Query{Text: tc.text, JobType: All, Location: All})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestApplyJobType(t *testing.T) {
	t.Parallel()

	got := Apply(sampleJobs(), Query{JobType: "onsite", Location: All})

	assert.Equal(t, []string{"2"}, ids(got))
}

func TestApplyLocationIsCaseSensitive(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs()

	assert.Equal(t, []string{"3"}, ids(Apply(jobs, Query{JobType: All, Location: "Portland"})))
	assert.Empty(t, ids(Apply(jobs, Query{JobType: All, Location: "portland"})))
}

func TestApplyConjunction(t *testing.T) {
	t.Parallel()

	got := Apply(sampleJobs(), Query{Text: "austin", JobType: "remote", Location: "Austin"})

	// Text matches nothing (location is not a text field), so the
	// conjunction is empty even though type and location match job 1.
	assert.Empty(t, ids(got))
}

func TestRunPreservesOrderAndInput(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs()
	before := ids(jobs)

	got := Run(nil, Steps(Query{Text: "a", JobType: All, Location: All}), jobs)

	// Output is a subsequence of the input in original order.
	pos := 0
	for _, id := range ids(got) {
		for pos < len(before) && before[pos] != id {
			pos++
		}
		require.Less(t, pos, len(before), "result out of order: %v", ids(got))
		pos++
	}

	assert.Equal(t, before, ids(jobs), "input list was mutated")
}

func TestQueryEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Query{}.Empty())
	assert.True(t, Query{JobType: All, Location: All}.Empty())
	assert.False(t, Query{Text: "go"}.Empty())
	assert.False(t, Query{Location: "Austin"}.Empty())
}

func TestLocations(t *testing.T) {
	t.Parallel()

	jobs := sampleJobs()
	got := Locations(jobs)

	assert.Equal(t, []string{"all", "Austin", "Portland"}, got)

	// Every derived value filters to a non-empty result containing a job
	// whose location holds that value.
	for _, location := range got[1:] {
		filtered := Apply(jobs, Query{JobType: All, Location: location})
		require.NotZero(t, filtered.Len(), "location %q matched nothing", location)
	}
}

func TestLocationsNeverDuplicatesAll(t *testing.T) {
	t.Parallel()

	jobs := &matchhub.Jobs{Items: []*matchhub.Job{
		{ID: "1", Location: "all, over the place"},
		{ID: "2", Location: "Remote"},
	}}

	assert.Equal(t, []string{"all", "Remote"}, Locations(jobs))
}
