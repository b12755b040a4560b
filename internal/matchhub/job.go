package matchhub

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	jobsPath            = "/jobs"
	recommendationsPath = "/recommendations"
)

type Jobs struct {
	Items []*Job
}

// Job is a read-only posting. The client never mutates one.
type Job struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Salary      string   `json:"salary,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// Recommendation is a job augmented with a backend-computed match score
// and reasons. Scores are never computed or re-ranked client-side.
type Recommendation struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
	JobDetails   *Job     `json:"jobDetails"`
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// ListJobs returns all postings in backend order.
func (c *Client) ListJobs(ctx context.Context) (*Jobs, error) {
	var items []any
	if err := c.getJSON(ctx, jobsPath, &items); err != nil {
		return nil, err
	}

	var jobs []*Job
	cfg := &mapstructure.DecoderConfig{
		Result:  &jobs,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, wrapTransport(err)
	}
	if err := decoder.Decode(items); err != nil {
		return nil, &Error{Kind: KindServer, cause: err}
	}

	return &Jobs{Items: jobs}, nil
}

// GetJob fetches a single posting, failing with a not-found kind when the
// id is unknown.
func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s", jobsPath, id), &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// Recommendations returns scored matches in backend order, assumed to be
// descending by score. An anonymous call is rejected before the request
// is issued.
func (c *Client) Recommendations(ctx context.Context) ([]*Recommendation, error) {
	if c.token() == "" {
		return nil, &Error{Kind: KindAuthRejected, Message: "authentication required for recommendations"}
	}

	var recs []*Recommendation
	if err := c.getJSON(ctx, recommendationsPath, &recs); err != nil {
		return nil, err
	}

	return recs, nil
}
