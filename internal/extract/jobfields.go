package extract

import (
	"regexp"
	"strings"
)

const (
	// Job titles are expected in the posting header, not the body.
	titleScanLines  = 5
	maxTitleLineLen = 100
)

var (
	// Matches "at Acme Corp" / "@ Globex Inc": a run of capitalized words
	// after "at"/"@". Corporate suffixes (Inc, LLC, Corp, Ltd, Co) are
	// capitalized words themselves, so they ride along in the capture.
	atCompanyRe = regexp.MustCompile(`(?:^|\s)(?:at\s+|@\s*)([A-Z][A-Za-z0-9&.'-]*(?:\s+[A-Z][A-Za-z0-9&.'-]*)*)`)

	jobWordRe = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|designer|specialist|coordinator|director|lead|senior|junior)\b`)
)

// JobFields is the metadata pulled from a pasted job posting. Extraction is
// best-effort and advisory: either field may be empty, and no validation is
// applied to what the heuristics capture. Callers must supply their own
// fallbacks.
type JobFields struct {
	CompanyName string
	JobTitle    string
}

// ParseJobPosting scans a free-text job posting line by line and derives a
// company name and job title. It is deterministic and side-effect-free.
func ParseJobPosting(text string) JobFields {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return JobFields{
		CompanyName: companyFrom(lines),
		JobTitle:    titleFrom(lines),
	}
}

func companyFrom(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "company:") || strings.Contains(lower, "organization:") {
			if idx := strings.Index(line, ":"); idx >= 0 {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	for _, line := range lines {
		if m := atCompanyRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func titleFrom(lines []string) string {
	limit := titleScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		lower := strings.ToLower(line)
		if strings.Contains(lower, "position:") || strings.Contains(lower, "role:") || strings.Contains(lower, "title:") {
			if idx := strings.Index(line, ":"); idx >= 0 {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if len(line) < maxTitleLineLen && jobWordRe.MatchString(line) {
			return line
		}
	}
	return ""
}
