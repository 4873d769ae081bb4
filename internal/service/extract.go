package service

import (
	"regexp"
	"strings"
)

var emphasisPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

const maxCandidatesPerAnswer = 10

// Generic words the model tends to emphasize that are never place names.
// Matched against the whole candidate, so "Best Biryani" still passes.
var candidateStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {},
	"near": {}, "nearby": {}, "here": {},
	"best": {}, "top": {}, "good": {}, "great": {},
	"popular": {}, "famous": {}, "recommended": {},
	"places": {}, "restaurants": {}, "food": {}, "menu": {},
	"city": {}, "area": {}, "location": {},
	"try": {}, "visit": {}, "open": {}, "closed": {},
}

// ExtractCandidates scans an answer for emphasis-marked spans and returns the
// distinct plausible place names, in first-seen order, capped at ten per
// answer. Spans shorter than three characters and stop-words are discarded;
// duplicates are folded case-insensitively.
func ExtractCandidates(answer string) []string {
	matches := emphasisPattern.FindAllStringSubmatch(answer, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSpace(match[1])
		if len(name) <= 2 {
			continue
		}
		key := strings.ToLower(name)
		if _, stop := candidateStopwords[key]; stop {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, name)
		if len(candidates) == maxCandidatesPerAnswer {
			break
		}
	}
	return candidates
}
