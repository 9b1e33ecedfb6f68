package ranking

import (
	"math"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// TimeBucket is one histogram cell of the best-time analysis.
type TimeBucket struct {
	Label   string
	Count   int
	Percent int
}

// BestTimes summarizes when a place's posts are published: a day-of-week
// histogram and a four-way time-of-day partition, with the mode of each.
type BestTimes struct {
	BestDay        string
	BestTimeOfDay  string
	Days           []TimeBucket
	TimesOfDay     []TimeBucket
	ValidPostCount int
}

var timeOfDayLabels = [4]string{"Morning", "Afternoon", "Evening", "Late Night"}

// AnalyzeBestTimes builds the posting-time histograms over posts with a
// resolvable timestamp. Returns nil when no post has one; callers must treat
// that as "no data" rather than a zeroed result.
func AnalyzeBestTimes(posts []domain.Post) *BestTimes {
	var dayCounts [7]int
	var slotCounts [4]int
	valid := 0

	for _, post := range posts {
		if post.CreatedAt.IsZero() {
			continue
		}
		valid++
		dayCounts[int(post.CreatedAt.Weekday())]++
		slotCounts[timeOfDaySlot(post.CreatedAt.Hour())]++
	}
	if valid == 0 {
		return nil
	}

	result := &BestTimes{
		Days:           make([]TimeBucket, 0, 7),
		TimesOfDay:     make([]TimeBucket, 0, 4),
		ValidPostCount: valid,
	}

	bestDay := 0
	for day := 0; day < 7; day++ {
		if dayCounts[day] > dayCounts[bestDay] {
			bestDay = day
		}
		result.Days = append(result.Days, TimeBucket{
			Label:   time.Weekday(day).String(),
			Count:   dayCounts[day],
			Percent: percentOf(dayCounts[day], valid),
		})
	}
	result.BestDay = time.Weekday(bestDay).String()

	bestSlot := 0
	for slot := 0; slot < 4; slot++ {
		if slotCounts[slot] > slotCounts[bestSlot] {
			bestSlot = slot
		}
		result.TimesOfDay = append(result.TimesOfDay, TimeBucket{
			Label:   timeOfDayLabels[slot],
			Count:   slotCounts[slot],
			Percent: percentOf(slotCounts[slot], valid),
		})
	}
	result.BestTimeOfDay = timeOfDayLabels[bestSlot]

	return result
}

// timeOfDaySlot partitions an hour into Morning [6,12), Afternoon [12,17),
// Evening [17,22), Late Night [22,6).
func timeOfDaySlot(hour int) int {
	switch {
	case hour >= 6 && hour < 12:
		return 0
	case hour >= 12 && hour < 17:
		return 1
	case hour >= 17 && hour < 22:
		return 2
	default:
		return 3
	}
}

func percentOf(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
