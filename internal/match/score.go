// Package match ranks FOUND item records against a lost-item description.
// Scoring is a priority rule table: at most one title rule and one location
// rule fire per candidate, category and description bonuses stack on top.
package match

import (
	"sort"
	"strings"

	"refind/internal/domain"
)

// Query is the lost-item description being searched for. Title and location
// are expected but an empty value only disables that signal.
type Query struct {
	Title       string
	Description string
	Location    string
	Category    string
}

const (
	scoreTitleExact    = 100
	scoreTitleContains = 80
	scoreTitleTokens   = 60
	scoreLocExact      = 30
	scoreLocContains   = 20
	scoreLocTokens     = 10
	scoreCategory      = 5
	scoreDescription   = 5

	// MinScore is the inclusion floor: a category or description bonus alone
	// can never qualify a candidate.
	MinScore = 20

	maxResults = 10
)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"is": true, "are": true, "was": true, "were": true,
	"and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// titleTokens splits a normalized title into keywords: stop words and tokens
// shorter than 3 characters are dropped.
func titleTokens(title string) []string {
	var out []string
	for _, w := range strings.Fields(title) {
		if len(w) > 2 && !stopWords[w] {
			out = append(out, w)
		}
	}
	return out
}

func longTokens(s string, minLen int) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) > minLen {
			out = append(out, w)
		}
	}
	return out
}

// Score computes the additive match score for a single candidate. Pure.
func Score(q Query, cand domain.Item) float64 {
	lostTitle := norm(q.Title)
	lostLoc := norm(q.Location)
	lostDesc := strings.ToLower(q.Description)

	candTitle := norm(cand.Title)
	candLoc := norm(cand.Location)
	candDesc := strings.ToLower(cand.Description)
	candCat := strings.ToLower(cand.Category)

	var score float64

	// Title signal, first matching rule wins.
	if lostTitle != "" && candTitle != "" {
		switch {
		case candTitle == lostTitle:
			score += scoreTitleExact
		case strings.Contains(candTitle, lostTitle) || strings.Contains(lostTitle, candTitle):
			score += scoreTitleContains
		default:
			if words := titleTokens(lostTitle); len(words) > 0 {
				matched := 0
				for _, w := range words {
					if strings.Contains(candTitle, w) {
						matched++
					}
				}
				if matched > 0 {
					score += float64(matched) / float64(len(words)) * scoreTitleTokens
				}
			}
		}
	}

	// Location signal, same priority shape.
	if lostLoc != "" && candLoc != "" {
		switch {
		case candLoc == lostLoc:
			score += scoreLocExact
		case strings.Contains(candLoc, lostLoc) || strings.Contains(lostLoc, candLoc):
			score += scoreLocContains
		default:
			lostWords := longTokens(lostLoc, 3)
			candWords := longTokens(candLoc, 3)
			matched := 0
			for _, w := range lostWords {
				for _, cw := range candWords {
					if strings.Contains(cw, w) || strings.Contains(w, cw) {
						matched++
						break
					}
				}
			}
			if matched > 0 {
				score += float64(matched) / float64(len(lostWords)) * scoreLocTokens
			}
		}
	}

	if q.Category != "" && candCat == strings.ToLower(q.Category) {
		score += scoreCategory
	}

	// Description bonus only once some title/location relevance exists.
	if score > 0 && lostDesc != "" && candDesc != "" {
		words := longTokens(lostDesc, 4)
		matched := 0
		for _, w := range words {
			if strings.Contains(candDesc, w) {
				matched++
			}
		}
		if matched > 0 {
			score += float64(matched) / float64(len(words)) * scoreDescription
		}
	}

	return score
}

// Rank scores every candidate, drops those under MinScore and anything that
// is not a well-formed FOUND record, and returns at most 10 results ordered
// by descending score. Ties prefer an exact normalized title match; otherwise
// the incoming order is kept, so identical input yields identical output.
func Rank(q Query, candidates []domain.Item) []domain.Match {
	lostTitle := norm(q.Title)

	var out []domain.Match
	for _, cand := range candidates {
		// One corrupt record must not blank the whole result set.
		if cand.Kind != domain.KindFound || cand.ID == "" || cand.Title == "" {
			continue
		}
		if s := Score(q, cand); s >= MinScore {
			out = append(out, domain.Match{Item: cand, Score: s})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		iExact := norm(out[i].Title) == lostTitle
		jExact := norm(out[j].Title) == lostTitle
		return iExact && !jExact
	})

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
