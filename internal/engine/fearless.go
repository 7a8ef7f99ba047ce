package engine

import "github.com/DoyleJ11/bp-draft-server/internal/catalog"

// FearlessExclusions is every character picked in a prior game of the series, by either
// team on either side. STANDARD series never exclude anything.
func FearlessExclusions(history []GameResult, mode DraftMode) []string {
	out := []string{}
	if mode != DraftFearless {
		return out
	}
	seen := make(map[string]bool)
	for _, g := range history {
		for _, picks := range [][]string{g.BluePicks, g.RedPicks} {
			for _, id := range picks {
				if id == "" || catalog.IsSentinel(id) || seen[id] {
					continue
				}
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
