package filtering

import (
	"strings"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

// Locations derives the values offered by the location selector: "all"
// followed by each distinct location prefix (the part before the first
// comma, trimmed) in first-seen order. A job located literally at "all"
// does not produce a duplicate entry.
func Locations(jobs *matchhub.Jobs) []string {
	locations := []string{All}
	seen := map[string]bool{All: true}

	for _, job := range jobs.Items {
		prefix := strings.TrimSpace(strings.SplitN(job.Location, ",", 2)[0])
		if seen[prefix] {
			continue
		}
		seen[prefix] = true
		locations = append(locations, prefix)
	}

	return locations
}
