package triage

import (
	"regexp"
	"strconv"
	"strings"
)

// weekPattern matches phrases like "6 weeks" or "20 week" with optional
// whitespace between the number and the word.
var weekPattern = regexp.MustCompile(`(\d{1,2})\s*weeks?\b`)

// ExtractWeek parses a gestational week out of free text, e.g. "I am 6 weeks
// pregnant" → 6. Only the first match is used. The boolean distinguishes
// "not found" from a legitimate week 0. No plausibility bound is applied;
// "99 weeks" parses as 99.
func ExtractWeek(text string) (int, bool) {
	match := weekPattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return 0, false
	}
	week, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return week, true
}
