package job

import "strings"

// Criteria describes an in-memory listing filter. Zero values deactivate a
// criterion; Category additionally treats CategoryAll as inactive and
// Type/Location/Status treat "all" the same way.
type Criteria struct {
	Query    string
	Category Category
	Type     string
	Location string
	Status   string
}

// Filter returns the jobs matching every active criterion, preserving the
// input order. The query matches title, company or location as a
// case-insensitive substring. The filter is pure: the input slice is never
// modified and the same inputs always produce the same output.
func Filter(jobs []Job, c Criteria) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, c) {
			out = append(out, j)
		}
	}
	return out
}

// Matches reports whether a single job satisfies every active criterion.
func Matches(j Job, c Criteria) bool {
	if q := strings.TrimSpace(c.Query); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) &&
			!strings.Contains(strings.ToLower(j.Location), q) {
			return false
		}
	}

	if c.Category != "" && c.Category != CategoryAll && j.Category != c.Category {
		return false
	}

	if active(c.Type) && j.Type != c.Type {
		return false
	}
	if active(c.Location) && j.Location != c.Location {
		return false
	}
	if active(c.Status) && j.Status != c.Status {
		return false
	}

	return true
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}
