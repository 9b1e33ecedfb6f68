package ranking

import (
	"sort"
	"strings"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// VibeCount is one aggregated tag with its occurrence count.
type VibeCount struct {
	Tag   string
	Count int
}

// AggregateVibes counts tag occurrences across posts, case-insensitively and
// trimmed, excluding empty tags. Results are ordered by count descending with
// first-seen order breaking ties.
func AggregateVibes(posts []domain.Post) []VibeCount {
	index := make(map[string]int)
	vibes := make([]VibeCount, 0)

	for _, post := range posts {
		for _, tag := range post.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			i, ok := index[tag]
			if !ok {
				i = len(vibes)
				index[tag] = i
				vibes = append(vibes, VibeCount{Tag: tag})
			}
			vibes[i].Count++
		}
	}

	sort.SliceStable(vibes, func(i, j int) bool {
		return vibes[i].Count > vibes[j].Count
	})
	return vibes
}
