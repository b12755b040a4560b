package matchhub

import (
	"context"
	"fmt"
)

const (
	getProfilePath  = "/profile/me"
	saveProfilePath = "/profile"
)

// Job type values accepted by the backend. JobTypeAny is valid only as a
// profile preference, never on a job posting.
const (
	JobTypeRemote = "remote"
	JobTypeOnsite = "onsite"
	JobTypeHybrid = "hybrid"
	JobTypeAny    = "any"
)

// Profile is the user's skills profile. The backend owns it; the client
// holds a transient copy for editing and display.
type Profile struct {
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Skills            []string `json:"skills"`
	PreferredJobType  string   `json:"preferredJobType"`
}

// Validate rejects profiles the backend would never accept, so that bad
// input surfaces before any network call.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return newValidationError("name is required")
	}
	if p.Location == "" {
		return newValidationError("location is required")
	}
	if p.YearsOfExperience < 0 {
		return newValidationError("years of experience cannot be negative")
	}
	if len(p.Skills) == 0 {
		return newValidationError("select at least one skill")
	}

	switch p.PreferredJobType {
	case JobTypeRemote, JobTypeOnsite, JobTypeHybrid, JobTypeAny:
		return nil
	default:
		return newValidationError(fmt.Sprintf("unknown job type: %s", p.PreferredJobType))
	}
}

// GetProfile fetches the authenticated user's profile. A user that has
// never saved one gets a not-found kind, distinct from real failures.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, getProfilePath, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// SaveProfile creates or replaces the profile. There is no partial
// update: a second call with the same user overwrites the first.
func (c *Client) SaveProfile(ctx context.Context, profile *Profile) (*Profile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	var saved Profile
	if err := c.postJSON(ctx, saveProfilePath, profile, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}
