package utils

import (
	"regexp"
	"strings"
)

var (
	flightNumberPattern = regexp.MustCompile(`(?i)flight:?\s*([A-Z0-9]{2,}\s*\d{1,4}[A-Z]?)`)
	airlinePattern      = regexp.MustCompile(`(?i)airline:?\s*([^,\n:][^,\n]*)`)
	terminalPattern     = regexp.MustCompile(`(?i)terminal:?\s*([^,\n:][^,\n]*)`)
)

// ExtractFlightInfo pulls flight number, airline and terminal out of free-text trip
// notes and joins whatever was found in that order. Returns "" when nothing matches.
func ExtractFlightInfo(notes string) string {
	parts := make([]string, 0, 3)
	for _, re := range []*regexp.Regexp{flightNumberPattern, airlinePattern, terminalPattern} {
		m := re.FindStringSubmatch(notes)
		if len(m) < 2 {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
