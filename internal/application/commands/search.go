package commands

import (
	"sort"
	"strings"

	"vitrine/internal/domain"
)

// TagMatch wraps domain.TagCount with a relevance score
type TagMatch struct {
	domain.TagCount
	Score int
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && strings.IndexByte(" -_/", target[i-1]) >= 0 {
			score += 10 // word start
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// RankTags narrows the tag list for the tag picker. An empty query keeps
// every tag in its original order; otherwise non-matching tags are dropped
// and the rest ordered by score, then by count.
func RankTags(tags []domain.TagCount, query string) []TagMatch {
	query = strings.TrimSpace(query)
	ranked := make([]TagMatch, 0, len(tags))

	for _, tc := range tags {
		if query == "" {
			ranked = append(ranked, TagMatch{TagCount: tc})
			continue
		}
		if s := FuzzyScore(tc.Tag, query); s > 0 {
			ranked = append(ranked, TagMatch{TagCount: tc, Score: s})
		}
	}

	if query != "" {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Score != ranked[j].Score {
				return ranked[i].Score > ranked[j].Score
			}
			return ranked[i].Count > ranked[j].Count
		})
	}
	return ranked
}
